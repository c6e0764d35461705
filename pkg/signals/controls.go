package signals

import "github.com/dtnitsch/page-signals/pkg/dom"

// ExtractButtons matches wording on submit controls and checks whether each
// one sits close to a visible username or email field.
//
// Two bits keep the layout the classifier was trained on: a login attribute
// match inside a form sets ForgotPatternInAttrsOnForm, and the three
// close-to-field signals share one proximity test.
func ExtractButtons(s Scope, buttons []dom.Element) ButtonSignals {
	lib := s.Lib
	var fields []dom.Element
	if s.Doc != nil && len(buttons) > 0 {
		fields = append(visibleEmailFields(s.Doc, lib), visibleUsernameFields(s.Doc, lib)...)
	}

	return fold(buttons, func(r ButtonSignals, b dom.Element) ButtonSignals {
		forgotAttr := attrsMatch(b, lib.ForgotAction)
		forgotText := textMatch(b, lib.ForgotCombinedExact)
		loginAttr := attrsMatch(b, lib.LoginAction)
		loginText := textMatch(b, lib.LoginCombinedExact)
		registerAttr := attrsMatch(b, lib.RegisterAct)
		registerText := textMatch(b, lib.RegisterCombinedExact)
		newsAttr := attrsMatch(b, lib.Newsletter)
		newsText := textMatch(b, lib.Newsletter)
		nextAttr := attrsMatch(b, lib.Next)
		nextText := textMatch(b, lib.Next)
		nearField := dom.CloseToAny(b, fields)
		onForm := b.InForm()

		r.ForgotPatternInAttrs = r.ForgotPatternInAttrs || forgotAttr
		r.ForgotPatternInAttrsOnForm = r.ForgotPatternInAttrsOnForm || forgotAttr && onForm || loginAttr && onForm
		r.ForgotPatternInTextContent = r.ForgotPatternInTextContent || forgotText
		r.ForgotPatternInTextContentOnForm = r.ForgotPatternInTextContentOnForm || forgotText && onForm

		r.LoginPatternAttr = r.LoginPatternAttr || loginAttr
		r.LoginPatternInTextContent = r.LoginPatternInTextContent || loginText
		r.LoginPatternInTextContentOnForm = r.LoginPatternInTextContentOnForm || loginText && onForm

		r.RegisterPatternAttr = r.RegisterPatternAttr || registerAttr
		r.RegisterPatternAttrOnForm = r.RegisterPatternAttrOnForm || registerAttr && onForm
		r.RegisterPatternInTextContent = r.RegisterPatternInTextContent || registerText
		r.RegisterPatternInTextContentOnForm = r.RegisterPatternInTextContentOnForm || registerText && onForm

		r.NewsletterPatternInAttrs = r.NewsletterPatternInAttrs || newsAttr
		r.NewsletterPatternInAttrsOnForm = r.NewsletterPatternInAttrsOnForm || newsAttr && onForm
		r.NewsletterPatternInTextContent = r.NewsletterPatternInTextContent || newsText
		r.NewsletterPatternInTextContentOnForm = r.NewsletterPatternInTextContentOnForm || newsText && onForm

		r.NextPatternInAttrs = r.NextPatternInAttrs || nextAttr
		r.NextPatternInAttrsOnForm = r.NextPatternInAttrsOnForm || nextAttr && onForm
		r.NextPatternInTextContent = r.NextPatternInTextContent || nextText
		r.NextPatternInTextContentOnForm = r.NextPatternInTextContentOnForm || nextText && onForm

		r.NextButtonCloseToUsernameEmailFields = r.NextButtonCloseToUsernameEmailFields || nextText && nearField
		r.NextButtonCloseToUsernameEmailFieldsOnForm = r.NextButtonCloseToUsernameEmailFieldsOnForm || nextText && nearField && onForm
		r.LoginyButtonCloseToUsernameEmailFields = r.LoginyButtonCloseToUsernameEmailFields || loginText && nearField
		r.LoginyButtonCloseToUsernameEmailFieldsOnForm = r.LoginyButtonCloseToUsernameEmailFieldsOnForm || loginText && nearField && onForm
		r.RegisteryButtonCloseToUsernameEmailFields = r.RegisteryButtonCloseToUsernameEmailFields || registerText && nearField
		r.RegisteryButtonCloseToUsernameEmailFieldsOnForm = r.RegisteryButtonCloseToUsernameEmailFieldsOnForm || registerText && nearField && onForm
		return r
	})
}

// ExtractInputs classifies text-like inputs as email or username fields and
// counts those that can carry personal data.
//
// Pattern matches inside a form set the page-wide fields, so the login,
// register and newsletter on-form bits stay zero.
func ExtractInputs(s Scope, inputs []dom.Element) InputSignals {
	lib := s.Lib
	personal := 0
	return fold(inputs, func(r InputSignals, in dom.Element) InputSignals {
		login := attrsOrTextMatch(in, lib.LoginAction, lib.LoginCombinedExact)
		register := attrsOrTextMatch(in, lib.RegisterAct, lib.RegisterCombinedExact)
		news := attrsOrTextMatch(in, lib.Newsletter, lib.Newsletter)
		email := isEmailField(in, lib)
		username := isUsernameField(in, lib)
		onForm := in.InForm()
		if canContainPersonalData(in) {
			personal++
		}

		r.LoginPattern = r.LoginPattern || login
		r.RegisterPattern = r.RegisterPattern || register
		r.NewsletterPattern = r.NewsletterPattern || news
		r.AnyEmail = r.AnyEmail || email
		r.AnyUsername = r.AnyUsername || username
		r.AnyEmailOnForm = r.AnyEmailOnForm || email && onForm
		r.AnyUsernameOnForm = r.AnyUsernameOnForm || username && onForm
		r.SeveralInputElements = personal > 1
		return r
	})
}

// ExtractPasswords resolves what each password field asks for from its label,
// its attributes or the label nearest to it. The any and several bits depend
// on the number of password fields on the page.
func ExtractPasswords(s Scope, fields []dom.Element) PasswordSignals {
	lib := s.Lib
	r := fold(fields, func(r PasswordSignals, f dom.Element) PasswordSignals {
		confirm := describesPassword(f, lib.Confirm)
		current := describesPassword(f, lib.Current)
		isNew := describesPassword(f, lib.New)
		onForm := f.InForm()

		r.ConfirmPattern = r.ConfirmPattern || confirm
		r.ConfirmPatternOnForm = r.ConfirmPatternOnForm || confirm && onForm
		r.CurrentPattern = r.CurrentPattern || current
		r.CurrentPatternOnForm = r.CurrentPatternOnForm || current && onForm
		r.NewPattern = r.NewPattern || isNew
		r.NewPatternOnForm = r.NewPatternOnForm || isNew && onForm
		return r
	})
	r.AnyPasswordField = len(fields) == 1
	r.SeveralPasswordFields = len(fields) > 1
	return r
}

// ExtractTextContainers looks for short, visible account prompts and
// newsletter copy. Only the last match of each kind counts.
func ExtractTextContainers(s Scope, containers []dom.Element) TextContainerSignals {
	lib := s.Lib
	var r TextContainerSignals

	if el, ok := lastShortMatch(containers, lib.HaveAccount); ok {
		r.AlreadyHaveAccPattern = true
		r.AlreadyHaveAccPatternOnForm = el.InForm()
	}
	if el, ok := lastShortMatch(containers, lib.NotHaveAccount); ok {
		r.NotHaveAccPattern = true
		r.NotHaveAccPatternOnForm = el.InForm()
	}
	if _, ok := lastShortMatch(containers, lib.Newsletter); ok {
		r.NewsletterPattern = true
	}
	return r
}
