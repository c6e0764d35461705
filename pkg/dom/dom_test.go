package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, src string) *Document {
	t.Helper()
	doc, err := ParseString(src, "https://example.com/")
	require.NoError(t, err)
	return doc
}

func ids(elements []Element) []string {
	out := make([]string, 0, len(elements))
	for _, e := range elements {
		out = append(out, e.ID())
	}
	return out
}

func TestSelectByTagExcludesFooter(t *testing.T) {
	doc := mustParse(t, `<html><body>
		<a id="a1" href="/x">one</a>
		<div><a id="a2" href="/y">two</a></div>
		<footer><a id="a3" href="/privacy">privacy</a><div><a id="a4">deep</a></div></footer>
	</body></html>`)

	assert.Equal(t, []string{"a1", "a2"}, ids(doc.SelectByTag("a")))
}

func TestSelectByTagEmptyDocument(t *testing.T) {
	doc := mustParse(t, "")
	assert.Empty(t, doc.SelectByTag("input"))
	assert.Empty(t, doc.Forms())
}

func TestSelectByTagPanicsOnBadSelector(t *testing.T) {
	doc := mustParse(t, "<p>x</p>")
	assert.Panics(t, func() { doc.SelectByTag("input[") })
}

func TestVisible(t *testing.T) {
	doc := mustParse(t, `<html><body>
		<input id="plain">
		<input id="hidden-type" type="hidden">
		<input id="hidden-attr" hidden>
		<input id="display-none" style="display: none">
		<input id="visibility" style="visibility:hidden">
		<input id="zero-width" style="width:0px">
		<input id="zero-attr" width="0">
		<input id="transparent" style="opacity: 0">
		<input id="captured-zero" data-ps-box="10,10,0,20">
		<div data-ps-box="0,0,0,0"><input id="in-captured-zero" data-ps-box="0,0,100,20"></div>
		<input id="flagged" data-ps-hidden="1">
		<div style="display:none"><input id="in-hidden-parent"></div>
		<div style="visibility:hidden"><input id="override" style="visibility:visible"></div>
		<div style="height:0"><input id="in-collapsed"></div>
		<details><summary><input id="in-summary"></summary><input id="in-closed"></details>
		<details open><input id="in-open"></details>
	</body></html>`)

	tests := []struct {
		id   string
		want bool
	}{
		{"plain", true},
		{"hidden-type", false},
		{"hidden-attr", false},
		{"display-none", false},
		{"visibility", false},
		{"zero-width", false},
		{"zero-attr", false},
		{"transparent", false},
		{"captured-zero", false},
		{"in-captured-zero", false},
		{"flagged", false},
		{"in-hidden-parent", false},
		{"override", true},
		{"in-collapsed", false},
		{"in-summary", true},
		{"in-closed", false},
		{"in-open", true},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			el, ok := doc.ElementByID(tt.id)
			require.True(t, ok)
			assert.Equal(t, tt.want, el.Visible())
		})
	}

	assert.False(t, Element{}.Visible())
}

func TestSelectVisibleByTag(t *testing.T) {
	doc := mustParse(t, `<body><input id="a"><input id="b" type="hidden"><input id="c"></body>`)
	assert.Equal(t, []string{"a", "c"}, ids(doc.SelectVisibleByTag("input")))
}

func TestInForm(t *testing.T) {
	doc := mustParse(t, `<body>
		<form><div><input id="inside"></div></form>
		<input id="outside">
	</body>`)

	inside, _ := doc.ElementByID("inside")
	outside, _ := doc.ElementByID("outside")
	assert.True(t, inside.InForm())
	assert.False(t, outside.InForm())
	assert.False(t, Element{}.InForm())
}

func TestNearIsMonotonicAndBounded(t *testing.T) {
	prev := 1.0
	for d := 0.0; d <= 5000; d += 50 {
		score := NearScore(d)
		assert.Greater(t, score, 0.0)
		assert.Less(t, score, 1.0)
		assert.Less(t, score, prev, "distance %v", d)
		prev = score
	}
	assert.InDelta(t, 0.5, NearScore(300), 1e-9)
}

func TestNearUsesCapturedBoxes(t *testing.T) {
	doc := mustParse(t, `<body>
		<input id="field" data-ps-box="0,0,200,30">
		<button id="close" data-ps-box="0,40,100,30">Go</button>
		<button id="far" data-ps-box="900,900,100,30">Go</button>
	</body>`)

	field, _ := doc.ElementByID("field")
	closeBtn, _ := doc.ElementByID("close")
	farBtn, _ := doc.ElementByID("far")

	assert.Greater(t, Near(field, closeBtn), Near(field, farBtn))
	assert.True(t, CloseToAny(closeBtn, []Element{field}))
	assert.False(t, CloseToAny(farBtn, []Element{field}))
	assert.False(t, CloseToAny(closeBtn, nil))

	nearest, ok := Nearest(field, []Element{farBtn, closeBtn})
	require.True(t, ok)
	assert.Equal(t, "close", nearest.ID())
}

func TestEstimatedLayoutStacksBlocks(t *testing.T) {
	doc := mustParse(t, `<body>
		<form>
			<div><input id="user"></div>
			<div><input id="pass" type="password"></div>
			<div><button id="submit">Log in</button></div>
		</form>
		<p>filler</p><p>filler</p><p>filler</p><p>filler</p><p>filler</p>
		<p>filler</p><p>filler</p><p>filler</p><p>filler</p><p>filler</p>
		<p>filler</p><p>filler</p><p>filler</p><p>filler</p><p>filler</p>
		<p>filler</p><p>filler</p><p>filler</p><p>filler</p><p>filler</p>
		<p>filler</p><p>filler</p><p>filler</p><p>filler</p><p>filler</p>
		<button id="bottom">Log in</button>
	</body>`)

	user, _ := doc.ElementByID("user")
	pass, _ := doc.ElementByID("pass")
	submit, _ := doc.ElementByID("submit")
	bottom, _ := doc.ElementByID("bottom")

	assert.Less(t, user.Box().Y, pass.Box().Y)
	assert.Less(t, pass.Box().Y, submit.Box().Y)
	assert.Greater(t, user.Box().W, 0.0)
	assert.True(t, CloseToAny(submit, []Element{user}))
	assert.False(t, CloseToAny(bottom, []Element{user}))
}

func TestLabels(t *testing.T) {
	doc := mustParse(t, `<body>
		<label for="email">E-mail</label><input id="email">
		<label>Username <input id="wrapped"></label>
		<label for="other">Other <input id="mismatch"></label>
		<div id="div">text</div>
	</body>`)

	email, _ := doc.ElementByID("email")
	labels, ok := email.Labels()
	require.True(t, ok)
	require.Len(t, labels, 1)
	assert.Equal(t, "E-mail", labels[0].Text())

	wrapped, _ := doc.ElementByID("wrapped")
	labels, ok = wrapped.Labels()
	require.True(t, ok)
	require.Len(t, labels, 1)
	assert.Contains(t, labels[0].Text(), "Username")

	mismatch, _ := doc.ElementByID("mismatch")
	labels, ok = mismatch.Labels()
	require.True(t, ok)
	assert.Empty(t, labels)

	div, _ := doc.ElementByID("div")
	_, ok = div.Labels()
	assert.False(t, ok)
}

func TestCapabilityQueries(t *testing.T) {
	doc := mustParse(t, `<body>
		<form id="f1"><input id="a" autocomplete="Username" type="EMAIL"></form>
		<input id="b" form="f1" type="bogus">
		<div id="c" autocomplete="username"></div>
	</body>`)

	a, _ := doc.ElementByID("a")
	ac, ok := a.Autocomplete()
	assert.True(t, ok)
	assert.Equal(t, "username", ac)
	typ, ok := a.InputType()
	assert.True(t, ok)
	assert.Equal(t, "email", typ)

	b, _ := doc.ElementByID("b")
	typ, _ = b.InputType()
	assert.Equal(t, "text", typ)
	form, ok := b.Form()
	require.True(t, ok)
	assert.Equal(t, "f1", form.ID())
	_, ok = b.Autocomplete()
	assert.False(t, ok)

	c, _ := doc.ElementByID("c")
	_, ok = c.Autocomplete()
	assert.False(t, ok)
	_, ok = c.InputType()
	assert.False(t, ok)
}

func TestAttrValuesSkipsReserved(t *testing.T) {
	doc := mustParse(t, `<body><input id="x" name="login" value="" data-ps-box="1,2,3,4" data-ps-hidden="1"></body>`)
	x, _ := doc.ElementByID("x")
	assert.Equal(t, []string{"x", "login"}, x.AttrValues())
}
