package signals

// Record is the output of one category extractor. Fields returns the values in
// feature-vector order and FieldNames the matching names.
type Record interface {
	Category() Category
	Fields() []bool
	FieldNames() []string
}

// FormSignals describes form elements. Forms rarely carry useful text, so only
// attributes are matched.
type FormSignals struct {
	NewsletterPatternInAttrs bool `json:"has_newsletter_pattern_in_attrs" yaml:"has_newsletter_pattern_in_attrs"`
	ForgotMatchInAttrs       bool `json:"has_forgot_match_in_attrs" yaml:"has_forgot_match_in_attrs"`
	LoginPatternInAttrs      bool `json:"has_login_pattern_in_attrs" yaml:"has_login_pattern_in_attrs"`
	RegisterPatternInAttrs   bool `json:"has_register_pattern_in_attrs" yaml:"has_register_pattern_in_attrs"`
}

func (FormSignals) Category() Category { return CategoryForm }

func (s FormSignals) Fields() []bool {
	return []bool{
		s.LoginPatternInAttrs,
		s.RegisterPatternInAttrs,
		s.NewsletterPatternInAttrs,
		s.ForgotMatchInAttrs,
	}
}

func (FormSignals) FieldNames() []string {
	return []string{
		"has_login_pattern_in_attrs",
		"has_register_pattern_in_attrs",
		"has_newsletter_pattern_in_attrs",
		"has_forgot_match_in_attrs",
	}
}

// AnchorSignals describes links, chiefly forgot-password links.
type AnchorSignals struct {
	ForgotPasswordPatternInTextContent       bool `json:"has_forgot_password_pattern_in_text_content" yaml:"has_forgot_password_pattern_in_text_content"`
	ForgotPasswordPatternInAttrs             bool `json:"has_forgot_password_pattern_in_attrs" yaml:"has_forgot_password_pattern_in_attrs"`
	ForgotPasswordPatternInTextContentOnForm bool `json:"has_forgot_password_pattern_in_text_content_on_form" yaml:"has_forgot_password_pattern_in_text_content_on_form"`
	ForgotPasswordPatternInAttrsOnForm       bool `json:"has_forgot_password_pattern_in_attrs_on_form" yaml:"has_forgot_password_pattern_in_attrs_on_form"`
}

func (AnchorSignals) Category() Category { return CategoryAnchor }

func (s AnchorSignals) Fields() []bool {
	return []bool{
		s.ForgotPasswordPatternInTextContent,
		s.ForgotPasswordPatternInAttrs,
		s.ForgotPasswordPatternInTextContentOnForm,
		s.ForgotPasswordPatternInAttrsOnForm,
	}
}

func (AnchorSignals) FieldNames() []string {
	return []string{
		"has_forgot_password_pattern_in_text_content",
		"has_forgot_password_pattern_in_attrs",
		"has_forgot_password_pattern_in_text_content_on_form",
		"has_forgot_password_pattern_in_attrs_on_form",
	}
}

// ButtonSignals describes submit controls and their position relative to the
// username and email fields.
type ButtonSignals struct {
	LoginPatternAttr                                bool `json:"has_login_pattern_attr" yaml:"has_login_pattern_attr"`
	LoginPatternAttrOnForm                          bool `json:"has_login_pattern_attr_on_form" yaml:"has_login_pattern_attr_on_form"`
	LoginPatternInTextContent                       bool `json:"has_login_pattern_in_text_content" yaml:"has_login_pattern_in_text_content"`
	LoginPatternInTextContentOnForm                 bool `json:"has_login_pattern_in_text_content_on_form" yaml:"has_login_pattern_in_text_content_on_form"`
	RegisterPatternAttr                             bool `json:"has_register_pattern_attr" yaml:"has_register_pattern_attr"`
	RegisterPatternAttrOnForm                       bool `json:"has_register_pattern_attr_on_form" yaml:"has_register_pattern_attr_on_form"`
	RegisterPatternInTextContent                    bool `json:"has_register_pattern_in_text_content" yaml:"has_register_pattern_in_text_content"`
	RegisterPatternInTextContentOnForm              bool `json:"has_register_pattern_in_text_content_on_form" yaml:"has_register_pattern_in_text_content_on_form"`
	ForgotPatternInAttrs                            bool `json:"has_forgot_pattern_in_attrs" yaml:"has_forgot_pattern_in_attrs"`
	ForgotPatternInAttrsOnForm                      bool `json:"has_forgot_pattern_in_attrs_on_form" yaml:"has_forgot_pattern_in_attrs_on_form"`
	ForgotPatternInTextContent                      bool `json:"has_forgot_pattern_in_text_content" yaml:"has_forgot_pattern_in_text_content"`
	ForgotPatternInTextContentOnForm                bool `json:"has_forgot_pattern_in_text_content_on_form" yaml:"has_forgot_pattern_in_text_content_on_form"`
	NextButtonCloseToUsernameEmailFields            bool `json:"has_next_button_close_to_username_email_fields" yaml:"has_next_button_close_to_username_email_fields"`
	NextButtonCloseToUsernameEmailFieldsOnForm      bool `json:"has_next_button_close_to_username_email_fields_on_form" yaml:"has_next_button_close_to_username_email_fields_on_form"`
	NextPatternInAttrs                              bool `json:"has_next_pattern_in_attrs" yaml:"has_next_pattern_in_attrs"`
	NextPatternInAttrsOnForm                        bool `json:"has_next_pattern_in_attrs_on_form" yaml:"has_next_pattern_in_attrs_on_form"`
	NextPatternInTextContent                        bool `json:"has_next_pattern_in_text_content" yaml:"has_next_pattern_in_text_content"`
	NextPatternInTextContentOnForm                  bool `json:"has_next_pattern_in_text_content_on_form" yaml:"has_next_pattern_in_text_content_on_form"`
	NewsletterPatternInAttrs                        bool `json:"has_newsletter_pattern_in_attrs" yaml:"has_newsletter_pattern_in_attrs"`
	NewsletterPatternInAttrsOnForm                  bool `json:"has_newsletter_pattern_in_attrs_on_form" yaml:"has_newsletter_pattern_in_attrs_on_form"`
	NewsletterPatternInTextContent                  bool `json:"has_newsletter_pattern_in_text_content" yaml:"has_newsletter_pattern_in_text_content"`
	NewsletterPatternInTextContentOnForm            bool `json:"has_newsletter_pattern_in_text_content_on_form" yaml:"has_newsletter_pattern_in_text_content_on_form"`
	LoginyButtonCloseToUsernameEmailFields          bool `json:"has_loginy_button_close_to_username_email_fields" yaml:"has_loginy_button_close_to_username_email_fields"`
	LoginyButtonCloseToUsernameEmailFieldsOnForm    bool `json:"has_loginy_button_close_to_username_email_fields_on_form" yaml:"has_loginy_button_close_to_username_email_fields_on_form"`
	RegisteryButtonCloseToUsernameEmailFields       bool `json:"has_registery_button_close_to_username_email_fields" yaml:"has_registery_button_close_to_username_email_fields"`
	RegisteryButtonCloseToUsernameEmailFieldsOnForm bool `json:"has_registery_button_close_to_username_email_fields_on_form" yaml:"has_registery_button_close_to_username_email_fields_on_form"`
}

func (ButtonSignals) Category() Category { return CategoryButton }

// Fields follows the deployed layout, in which the register-attribute bit is
// emitted twice and RegisterPatternAttrOnForm has no slot of its own.
func (s ButtonSignals) Fields() []bool {
	return []bool{
		s.ForgotPatternInAttrs,
		s.ForgotPatternInAttrsOnForm,
		s.ForgotPatternInTextContent,
		s.ForgotPatternInTextContentOnForm,
		s.LoginPatternAttr,
		s.LoginPatternAttrOnForm,
		s.LoginPatternInTextContent,
		s.LoginPatternInTextContentOnForm,
		s.RegisterPatternAttr,
		s.RegisterPatternAttr,
		s.RegisterPatternInTextContent,
		s.RegisterPatternInTextContentOnForm,
		s.NextPatternInAttrs,
		s.NextPatternInAttrsOnForm,
		s.NextPatternInTextContent,
		s.NextPatternInTextContentOnForm,
		s.NewsletterPatternInAttrs,
		s.NewsletterPatternInAttrsOnForm,
		s.NewsletterPatternInTextContent,
		s.NewsletterPatternInTextContentOnForm,
		s.LoginyButtonCloseToUsernameEmailFields,
		s.LoginyButtonCloseToUsernameEmailFieldsOnForm,
		s.RegisteryButtonCloseToUsernameEmailFields,
		s.RegisteryButtonCloseToUsernameEmailFieldsOnForm,
		s.NextButtonCloseToUsernameEmailFields,
		s.NextButtonCloseToUsernameEmailFieldsOnForm,
	}
}

func (ButtonSignals) FieldNames() []string {
	return []string{
		"has_forgot_pattern_in_attrs",
		"has_forgot_pattern_in_attrs_on_form",
		"has_forgot_pattern_in_text_content",
		"has_forgot_pattern_in_text_content_on_form",
		"has_login_pattern_attr",
		"has_login_pattern_attr_on_form",
		"has_login_pattern_in_text_content",
		"has_login_pattern_in_text_content_on_form",
		"has_register_pattern_attr",
		"has_register_pattern_attr#2",
		"has_register_pattern_in_text_content",
		"has_register_pattern_in_text_content_on_form",
		"has_next_pattern_in_attrs",
		"has_next_pattern_in_attrs_on_form",
		"has_next_pattern_in_text_content",
		"has_next_pattern_in_text_content_on_form",
		"has_newsletter_pattern_in_attrs",
		"has_newsletter_pattern_in_attrs_on_form",
		"has_newsletter_pattern_in_text_content",
		"has_newsletter_pattern_in_text_content_on_form",
		"has_loginy_button_close_to_username_email_fields",
		"has_loginy_button_close_to_username_email_fields_on_form",
		"has_registery_button_close_to_username_email_fields",
		"has_registery_button_close_to_username_email_fields_on_form",
		"has_next_button_close_to_username_email_fields",
		"has_next_button_close_to_username_email_fields_on_form",
	}
}

// InputSignals describes plain text-like inputs.
type InputSignals struct {
	AnyEmail                bool `json:"has_any_email" yaml:"has_any_email"`
	AnyUsername             bool `json:"has_any_username" yaml:"has_any_username"`
	AnyEmailOnForm          bool `json:"has_any_email_on_form" yaml:"has_any_email_on_form"`
	AnyUsernameOnForm       bool `json:"has_any_username_on_form" yaml:"has_any_username_on_form"`
	SeveralInputElements    bool `json:"has_several_input_elements" yaml:"has_several_input_elements"`
	LoginPattern            bool `json:"has_login_pattern" yaml:"has_login_pattern"`
	LoginPatternOnForm      bool `json:"has_login_pattern_on_form" yaml:"has_login_pattern_on_form"`
	RegisterPattern         bool `json:"has_register_pattern" yaml:"has_register_pattern"`
	RegisterPatternOnForm   bool `json:"has_register_pattern_on_form" yaml:"has_register_pattern_on_form"`
	NewsletterPattern       bool `json:"has_newsletter_pattern" yaml:"has_newsletter_pattern"`
	NewsletterPatternOnForm bool `json:"has_newsletter_pattern_on_form" yaml:"has_newsletter_pattern_on_form"`
}

func (InputSignals) Category() Category { return CategoryTextInput }

func (s InputSignals) Fields() []bool {
	return []bool{
		s.LoginPattern,
		s.LoginPatternOnForm,
		s.RegisterPattern,
		s.RegisterPatternOnForm,
		s.NewsletterPattern,
		s.NewsletterPatternOnForm,
		s.AnyEmail,
		s.AnyUsername,
		s.AnyEmailOnForm,
		s.AnyUsernameOnForm,
		s.SeveralInputElements,
	}
}

func (InputSignals) FieldNames() []string {
	return []string{
		"has_login_pattern",
		"has_login_pattern_on_form",
		"has_register_pattern",
		"has_register_pattern_on_form",
		"has_newsletter_pattern",
		"has_newsletter_pattern_on_form",
		"has_any_email",
		"has_any_username",
		"has_any_email_on_form",
		"has_any_username_on_form",
		"has_several_input_elements",
	}
}

// LabelSignals describes label elements.
type LabelSignals struct {
	RememberPatternInAttrs               bool `json:"has_remember_pattern_in_attrs" yaml:"has_remember_pattern_in_attrs"`
	RememberPatternInAttrsOnForm         bool `json:"has_remember_pattern_in_attrs_on_form" yaml:"has_remember_pattern_in_attrs_on_form"`
	RememberPatternInTextContent         bool `json:"has_remember_pattern_in_text_content" yaml:"has_remember_pattern_in_text_content"`
	RememberPatternInTextContentOnForm   bool `json:"has_remember_pattern_in_text_content_on_form" yaml:"has_remember_pattern_in_text_content_on_form"`
	NewsletterPatternInAttrs             bool `json:"has_newsletter_pattern_in_attrs" yaml:"has_newsletter_pattern_in_attrs"`
	NewsletterPatternInAttrsOnForm       bool `json:"has_newsletter_pattern_in_attrs_on_form" yaml:"has_newsletter_pattern_in_attrs_on_form"`
	NewsletterPatternInTextContent       bool `json:"has_newsletter_pattern_in_text_content" yaml:"has_newsletter_pattern_in_text_content"`
	NewsletterPatternInTextContentOnForm bool `json:"has_newsletter_pattern_in_text_content_on_form" yaml:"has_newsletter_pattern_in_text_content_on_form"`
}

func (LabelSignals) Category() Category { return CategoryLabel }

func (s LabelSignals) Fields() []bool {
	return []bool{
		s.RememberPatternInAttrs,
		s.RememberPatternInAttrsOnForm,
		s.RememberPatternInTextContent,
		s.RememberPatternInTextContentOnForm,
		s.NewsletterPatternInAttrs,
		s.NewsletterPatternInAttrsOnForm,
		s.NewsletterPatternInTextContent,
		s.NewsletterPatternInTextContentOnForm,
	}
}

func (LabelSignals) FieldNames() []string {
	return []string{
		"has_remember_pattern_in_attrs",
		"has_remember_pattern_in_attrs_on_form",
		"has_remember_pattern_in_text_content",
		"has_remember_pattern_in_text_content_on_form",
		"has_newsletter_pattern_in_attrs",
		"has_newsletter_pattern_in_attrs_on_form",
		"has_newsletter_pattern_in_text_content",
		"has_newsletter_pattern_in_text_content_on_form",
	}
}

// HeaderSignals describes headings, heading-like blocks and legends.
type HeaderSignals struct {
	LoginPatternAttr                     bool `json:"has_login_pattern_attr" yaml:"has_login_pattern_attr"`
	LoginPatternAttrOnForm               bool `json:"has_login_pattern_attr_on_form" yaml:"has_login_pattern_attr_on_form"`
	LoginPatternInTextContent            bool `json:"has_login_pattern_in_text_content" yaml:"has_login_pattern_in_text_content"`
	LoginPatternInTextContentOnForm      bool `json:"has_login_pattern_in_text_content_on_form" yaml:"has_login_pattern_in_text_content_on_form"`
	RegisterPatternAttr                  bool `json:"has_register_pattern_attr" yaml:"has_register_pattern_attr"`
	RegisterPatternAttrOnForm            bool `json:"has_register_pattern_attr_on_form" yaml:"has_register_pattern_attr_on_form"`
	RegisterPatternInTextContent         bool `json:"has_register_pattern_in_text_content" yaml:"has_register_pattern_in_text_content"`
	RegisterPatternInTextContentOnForm   bool `json:"has_register_pattern_in_text_content_on_form" yaml:"has_register_pattern_in_text_content_on_form"`
	NewsletterPatternInAttrs             bool `json:"has_newsletter_pattern_in_attrs" yaml:"has_newsletter_pattern_in_attrs"`
	NewsletterPatternInAttrsOnForm       bool `json:"has_newsletter_pattern_in_attrs_on_form" yaml:"has_newsletter_pattern_in_attrs_on_form"`
	NewsletterPatternInTextContent       bool `json:"has_newsletter_pattern_in_text_content" yaml:"has_newsletter_pattern_in_text_content"`
	NewsletterPatternInTextContentOnForm bool `json:"has_newsletter_pattern_in_text_content_on_form" yaml:"has_newsletter_pattern_in_text_content_on_form"`
	ForgotPatternInAttrs                 bool `json:"has_forgot_pattern_in_attrs" yaml:"has_forgot_pattern_in_attrs"`
	ForgotPatternInAttrsOnForm           bool `json:"has_forgot_pattern_in_attrs_on_form" yaml:"has_forgot_pattern_in_attrs_on_form"`
	ForgotPatternInTextContent           bool `json:"has_forgot_pattern_in_text_content" yaml:"has_forgot_pattern_in_text_content"`
	ForgotPatternInTextContentOnForm     bool `json:"has_forgot_pattern_in_text_content_on_form" yaml:"has_forgot_pattern_in_text_content_on_form"`
}

func (HeaderSignals) Category() Category { return CategoryHeader }

func (s HeaderSignals) Fields() []bool {
	return []bool{
		s.LoginPatternAttr,
		s.LoginPatternAttrOnForm,
		s.LoginPatternInTextContent,
		s.LoginPatternInTextContentOnForm,
		s.RegisterPatternAttr,
		s.RegisterPatternAttrOnForm,
		s.RegisterPatternInTextContent,
		s.RegisterPatternInTextContentOnForm,
		s.NewsletterPatternInAttrs,
		s.NewsletterPatternInAttrsOnForm,
		s.NewsletterPatternInTextContent,
		s.NewsletterPatternInTextContentOnForm,
		s.ForgotPatternInAttrs,
		s.ForgotPatternInAttrsOnForm,
		s.ForgotPatternInTextContent,
		s.ForgotPatternInTextContentOnForm,
	}
}

func (HeaderSignals) FieldNames() []string {
	return []string{
		"has_login_pattern_attr",
		"has_login_pattern_attr_on_form",
		"has_login_pattern_in_text_content",
		"has_login_pattern_in_text_content_on_form",
		"has_register_pattern_attr",
		"has_register_pattern_attr_on_form",
		"has_register_pattern_in_text_content",
		"has_register_pattern_in_text_content_on_form",
		"has_newsletter_pattern_in_attrs",
		"has_newsletter_pattern_in_attrs_on_form",
		"has_newsletter_pattern_in_text_content",
		"has_newsletter_pattern_in_text_content_on_form",
		"has_forgot_pattern_in_attrs",
		"has_forgot_pattern_in_attrs_on_form",
		"has_forgot_pattern_in_text_content",
		"has_forgot_pattern_in_text_content_on_form",
	}
}

// CheckboxSignals describes checkbox inputs.
type CheckboxSignals struct {
	NewsletterPattern       bool `json:"has_newsletter_pattern" yaml:"has_newsletter_pattern"`
	NewsletterPatternOnForm bool `json:"has_newsletter_pattern_on_form" yaml:"has_newsletter_pattern_on_form"`
	RememberMePattern       bool `json:"has_remember_me_pattern" yaml:"has_remember_me_pattern"`
	RememberMePatternOnForm bool `json:"has_remember_me_pattern_on_form" yaml:"has_remember_me_pattern_on_form"`
}

func (CheckboxSignals) Category() Category { return CategoryCheckbox }

func (s CheckboxSignals) Fields() []bool {
	return []bool{
		s.NewsletterPattern,
		s.NewsletterPatternOnForm,
		s.RememberMePattern,
		s.RememberMePatternOnForm,
	}
}

func (CheckboxSignals) FieldNames() []string {
	return []string{
		"has_newsletter_pattern",
		"has_newsletter_pattern_on_form",
		"has_remember_me_pattern",
		"has_remember_me_pattern_on_form",
	}
}

// PasswordSignals describes password inputs and what each one asks for.
type PasswordSignals struct {
	ConfirmPattern        bool `json:"has_label_placeholder_aria_label_contains_confirm_pattern" yaml:"has_label_placeholder_aria_label_contains_confirm_pattern"`
	ConfirmPatternOnForm  bool `json:"has_label_placeholder_aria_label_contains_confirm_pattern_on_form" yaml:"has_label_placeholder_aria_label_contains_confirm_pattern_on_form"`
	CurrentPattern        bool `json:"has_label_placeholder_aria_label_contains_current_pattern" yaml:"has_label_placeholder_aria_label_contains_current_pattern"`
	CurrentPatternOnForm  bool `json:"has_label_placeholder_aria_label_contains_current_pattern_on_form" yaml:"has_label_placeholder_aria_label_contains_current_pattern_on_form"`
	NewPattern            bool `json:"has_label_placeholder_aria_label_contains_new_pattern" yaml:"has_label_placeholder_aria_label_contains_new_pattern"`
	NewPatternOnForm      bool `json:"has_label_placeholder_aria_label_contains_new_pattern_on_form" yaml:"has_label_placeholder_aria_label_contains_new_pattern_on_form"`
	AnyPasswordField      bool `json:"has_any_password_field" yaml:"has_any_password_field"`
	SeveralPasswordFields bool `json:"has_several_password_fields" yaml:"has_several_password_fields"`
}

func (PasswordSignals) Category() Category { return CategoryPassword }

func (s PasswordSignals) Fields() []bool {
	return []bool{
		s.ConfirmPattern,
		s.ConfirmPatternOnForm,
		s.CurrentPattern,
		s.CurrentPatternOnForm,
		s.NewPattern,
		s.NewPatternOnForm,
		s.AnyPasswordField,
		s.SeveralPasswordFields,
	}
}

func (PasswordSignals) FieldNames() []string {
	return []string{
		"has_label_placeholder_aria_label_contains_confirm_pattern",
		"has_label_placeholder_aria_label_contains_confirm_pattern_on_form",
		"has_label_placeholder_aria_label_contains_current_pattern",
		"has_label_placeholder_aria_label_contains_current_pattern_on_form",
		"has_label_placeholder_aria_label_contains_new_pattern",
		"has_label_placeholder_aria_label_contains_new_pattern_on_form",
		"has_any_password_field",
		"has_several_password_fields",
	}
}

// TextContainerSignals describes short account-prompt and newsletter copy in
// div, span and p elements.
type TextContainerSignals struct {
	AlreadyHaveAccPattern       bool `json:"has_already_have_acc_pattern" yaml:"has_already_have_acc_pattern"`
	AlreadyHaveAccPatternOnForm bool `json:"has_already_have_acc_pattern_on_form" yaml:"has_already_have_acc_pattern_on_form"`
	NotHaveAccPattern           bool `json:"has_not_have_acc_pattern" yaml:"has_not_have_acc_pattern"`
	NotHaveAccPatternOnForm     bool `json:"has_not_have_acc_pattern_on_form" yaml:"has_not_have_acc_pattern_on_form"`
	NewsletterPattern           bool `json:"has_newsletter_pattern" yaml:"has_newsletter_pattern"`
}

func (TextContainerSignals) Category() Category { return CategoryTextContainer }

func (s TextContainerSignals) Fields() []bool {
	return []bool{
		s.AlreadyHaveAccPattern,
		s.AlreadyHaveAccPatternOnForm,
		s.NotHaveAccPattern,
		s.NotHaveAccPatternOnForm,
		s.NewsletterPattern,
	}
}

func (TextContainerSignals) FieldNames() []string {
	return []string{
		"has_already_have_acc_pattern",
		"has_already_have_acc_pattern_on_form",
		"has_not_have_acc_pattern",
		"has_not_have_acc_pattern_on_form",
		"has_newsletter_pattern",
	}
}
