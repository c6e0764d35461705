package help

const ColdstartYAML = `# page-signals Quick Start

sources:
  file: "Saved HTML; geometry from data-ps-box attributes or estimated"
  http: "Server HTML over plain HTTP, optionally cached (default)"
  browser: "Headless Chrome render; captures boxes and visibility"

output_formats:
  json: "Run summary with one result per target (default)"
  yaml: "Same structure as YAML"
  bits: "One line per target: 88 characters of 0/1, a tab, the target"

commands:
  saved_page: |
    page-signals extract --source file login.html

  live_pages: |
    page-signals extract --source browser --urls "https://example.com/login,https://example.org/signup"

  batch_and_store: |
    page-signals extract --input targets.txt --workers 8 --store

  with_records: |
    page-signals extract --source file --signals --format yaml login.html

  field_names: |
    page-signals schema

  list_runs: |
    page-signals history

  list_vectors: |
    page-signals history --vectors 3
    page-signals history --domain example.com

  show_vector: |
    page-signals show 42

vector_layout:
  - "form 4, anchor 4, button 26, input 11, label 8"
  - "header 16, checkbox 4, password 8, div 5"
  - "url.has_reset_pattern, url.has_newsletter_pattern"

environment:
  - "PAGESIGNALS_SOURCE, PAGESIGNALS_WORKERS, PAGESIGNALS_TIMEOUT, PAGESIGNALS_SETTLE"
  - "PAGESIGNALS_CACHE_DIR, PAGESIGNALS_CACHE_TTL, PAGESIGNALS_STORE"
  - "PAGESIGNALS_DB, PAGESIGNALS_VOCAB"
  - "A .env file in the working directory is read first"

error_behavior:
  - "Malformed URLs: fail fast before capturing"
  - "Runtime errors: reported per target, stored as failures with --store"
  - "Exit codes: 0=success, 1=usage error or partial failure, 2=complete failure"
`
