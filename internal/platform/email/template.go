// Package email provides the password-reset mail senders. Exactly one
// implementation is selected at startup; callers only see the ResetMailer
// interface and never branch on the provider.
package email

import "fmt"

const resetSubject = "Reset your Task Manager password"

// resetBodies renders the HTML and plain-text bodies of the reset mail.
// The link expires server-side; the wording states the window so stale mails
// explain their own failure.
func resetBodies(name, resetURL string) (html, text string) {
	html = fmt.Sprintf(`<p>Hi %s,</p>
<p>We received a request to reset your password. Click the link below to choose a new one:</p>
<p><a href="%s">Reset password</a></p>
<p>The link is valid for 10 minutes. If you did not request a reset, you can ignore this email.</p>`,
		name, resetURL)

	text = fmt.Sprintf(`Hi %s,

We received a request to reset your password. Open the link below to choose a new one:

%s

The link is valid for 10 minutes. If you did not request a reset, you can ignore this email.`,
		name, resetURL)

	return html, text
}
