package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;
PRAGMA temp_store = MEMORY;

-- URLs table: normalized URL components
CREATE TABLE IF NOT EXISTS urls (
    url_id INTEGER PRIMARY KEY AUTOINCREMENT,
    original_url TEXT NOT NULL UNIQUE,
    canonical_url TEXT,
    scheme TEXT NOT NULL,
    domain TEXT NOT NULL,
    path TEXT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,

    -- URL-based classification from the detector
    domain_type TEXT,
    country TEXT
);

CREATE INDEX IF NOT EXISTS idx_urls_domain ON urls(domain);

-- Runs: one row per extract invocation
CREATE TABLE IF NOT EXISTS runs (
    run_id INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    source TEXT NOT NULL,          -- file, http, browser
    url_count INTEGER NOT NULL DEFAULT 0,
    success_count INTEGER NOT NULL DEFAULT 0,
    failed_count INTEGER NOT NULL DEFAULT 0,
    vocab TEXT                     -- path of a custom vocabulary, empty for the embedded one
);

CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);

-- Vectors: one feature vector per captured page
CREATE TABLE IF NOT EXISTS vectors (
    vector_id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id INTEGER,
    url_id INTEGER NOT NULL,
    page_url TEXT NOT NULL,        -- URL after redirects
    captured_at TIMESTAMP NOT NULL,
    source TEXT NOT NULL,
    geometry BOOLEAN DEFAULT 0,    -- boxes came from a rendered page
    content_hash TEXT NOT NULL,
    bits TEXT NOT NULL,            -- 88 characters of 0/1
    positives INTEGER NOT NULL DEFAULT 0,
    language TEXT,
    language_confidence REAL,
    title TEXT,
    site_name TEXT,
    FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE SET NULL,
    FOREIGN KEY (url_id) REFERENCES urls(url_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_vectors_url ON vectors(url_id);
CREATE INDEX IF NOT EXISTS idx_vectors_run ON vectors(run_id);
CREATE INDEX IF NOT EXISTS idx_vectors_hash ON vectors(content_hash);
CREATE INDEX IF NOT EXISTS idx_vectors_captured ON vectors(captured_at);

-- Extraction failures, kept for inspection
CREATE TABLE IF NOT EXISTS failures (
    failure_id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id INTEGER,
    target TEXT NOT NULL,
    error_message TEXT NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_failures_run ON failures(run_id);
`
