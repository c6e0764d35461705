package signals

import "github.com/dtnitsch/page-signals/pkg/dom"

// ExtractForms matches form attributes only; forms rarely carry useful text.
func ExtractForms(s Scope, forms []dom.Element) FormSignals {
	lib := s.Lib
	return fold(forms, func(r FormSignals, form dom.Element) FormSignals {
		r.LoginPatternInAttrs = r.LoginPatternInAttrs || attrsMatch(form, lib.LoginAction)
		r.RegisterPatternInAttrs = r.RegisterPatternInAttrs || attrsMatch(form, lib.RegisterAct)
		r.NewsletterPatternInAttrs = r.NewsletterPatternInAttrs || attrsMatch(form, lib.Newsletter)
		r.ForgotMatchInAttrs = r.ForgotMatchInAttrs || attrsMatch(form, lib.ForgotAction)
		return r
	})
}

// ExtractAnchors looks for forgot-password links. The attribute test accepts
// the password and forgot terms in different attributes.
func ExtractAnchors(s Scope, anchors []dom.Element) AnchorSignals {
	lib := s.Lib
	return fold(anchors, func(r AnchorSignals, a dom.Element) AnchorSignals {
		attrs := attrsMatch(a, lib.PasswordAttr, lib.ForgotAction)
		text := textMatch(a, lib.ForgotPassword)
		onForm := a.InForm()

		r.ForgotPasswordPatternInAttrs = r.ForgotPasswordPatternInAttrs || attrs
		r.ForgotPasswordPatternInAttrsOnForm = r.ForgotPasswordPatternInAttrsOnForm || attrs && onForm
		r.ForgotPasswordPatternInTextContent = r.ForgotPasswordPatternInTextContent || text
		r.ForgotPasswordPatternInTextContentOnForm = r.ForgotPasswordPatternInTextContentOnForm || text && onForm
		return r
	})
}

// ExtractLabels matches remember-me and newsletter wording on labels.
func ExtractLabels(s Scope, labels []dom.Element) LabelSignals {
	lib := s.Lib
	return fold(labels, func(r LabelSignals, l dom.Element) LabelSignals {
		rememberAttr := attrsMatch(l, lib.RememberAct)
		rememberText := textMatch(l, lib.RememberMe)
		newsAttr := attrsMatch(l, lib.Newsletter)
		newsText := textMatch(l, lib.Newsletter)
		onForm := l.InForm()

		r.RememberPatternInAttrs = r.RememberPatternInAttrs || rememberAttr
		r.RememberPatternInAttrsOnForm = r.RememberPatternInAttrsOnForm || rememberAttr && onForm
		r.RememberPatternInTextContent = r.RememberPatternInTextContent || rememberText
		r.RememberPatternInTextContentOnForm = r.RememberPatternInTextContentOnForm || rememberText && onForm
		r.NewsletterPatternInAttrs = r.NewsletterPatternInAttrs || newsAttr
		r.NewsletterPatternInAttrsOnForm = r.NewsletterPatternInAttrsOnForm || newsAttr && onForm
		r.NewsletterPatternInTextContent = r.NewsletterPatternInTextContent || newsText
		r.NewsletterPatternInTextContentOnForm = r.NewsletterPatternInTextContentOnForm || newsText && onForm
		return r
	})
}

// ExtractHeaders matches login, register, newsletter and forgot wording on
// headings.
//
// A register text match inside a form sets the page-wide register text field,
// so RegisterPatternInTextContentOnForm is never set. Trained classifiers
// depend on that bit staying zero.
func ExtractHeaders(s Scope, headers []dom.Element) HeaderSignals {
	lib := s.Lib
	return fold(headers, func(r HeaderSignals, h dom.Element) HeaderSignals {
		loginAttr := attrsMatch(h, lib.LoginAction)
		loginText := textMatch(h, lib.LoginCombinedExact)
		registerAttr := attrsMatch(h, lib.RegisterAct)
		registerText := textMatch(h, lib.RegisterCombinedExact)
		newsAttr := attrsMatch(h, lib.Newsletter)
		newsText := textMatch(h, lib.Newsletter)
		forgotAttr := attrsMatch(h, lib.ForgotAction)
		forgotText := textMatch(h, lib.ForgotCombinedExact)
		onForm := h.InForm()

		r.LoginPatternAttr = r.LoginPatternAttr || loginAttr
		r.LoginPatternAttrOnForm = r.LoginPatternAttrOnForm || loginAttr && onForm
		r.LoginPatternInTextContent = r.LoginPatternInTextContent || loginText
		r.LoginPatternInTextContentOnForm = r.LoginPatternInTextContentOnForm || loginText && onForm
		r.RegisterPatternAttr = r.RegisterPatternAttr || registerAttr
		r.RegisterPatternAttrOnForm = r.RegisterPatternAttrOnForm || registerAttr && onForm
		r.RegisterPatternInTextContent = r.RegisterPatternInTextContent || registerText
		r.NewsletterPatternInAttrs = r.NewsletterPatternInAttrs || newsAttr
		r.NewsletterPatternInAttrsOnForm = r.NewsletterPatternInAttrsOnForm || newsAttr && onForm
		r.NewsletterPatternInTextContent = r.NewsletterPatternInTextContent || newsText
		r.NewsletterPatternInTextContentOnForm = r.NewsletterPatternInTextContentOnForm || newsText && onForm
		r.ForgotPatternInAttrs = r.ForgotPatternInAttrs || forgotAttr
		r.ForgotPatternInAttrsOnForm = r.ForgotPatternInAttrsOnForm || forgotAttr && onForm
		r.ForgotPatternInTextContent = r.ForgotPatternInTextContent || forgotText
		r.ForgotPatternInTextContentOnForm = r.ForgotPatternInTextContentOnForm || forgotText && onForm
		return r
	})
}

// ExtractCheckboxes matches newsletter and remember-me checkboxes on either
// attributes or text.
func ExtractCheckboxes(s Scope, boxes []dom.Element) CheckboxSignals {
	lib := s.Lib
	return fold(boxes, func(r CheckboxSignals, c dom.Element) CheckboxSignals {
		news := attrsOrTextMatch(c, lib.Newsletter, lib.Newsletter)
		remember := attrsOrTextMatch(c, lib.RememberAct, lib.RememberMe)
		onForm := c.InForm()

		r.NewsletterPattern = r.NewsletterPattern || news
		r.NewsletterPatternOnForm = r.NewsletterPatternOnForm || news && onForm
		r.RememberMePattern = r.RememberMePattern || remember
		r.RememberMePatternOnForm = r.RememberMePatternOnForm || remember && onForm
		return r
	})
}
