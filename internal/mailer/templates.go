package mailer

import (
	"fmt"
	"html"
)

func notificationHTML(visitorName, visitorEmail, visitorPhone, subject, message string) string {
	phoneRow := ""
	if visitorPhone != "" {
		phoneRow = fmt.Sprintf("<p><strong>Phone:</strong> %s</p>", html.EscapeString(visitorPhone))
	}

	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #1F3A5F;">New Contact Form Submission</h2>
  <div style="background-color: #f5f5f5; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <p><strong>From:</strong> %s</p>
    <p><strong>Email:</strong> <a href="mailto:%s">%s</a></p>
    %s
    <p><strong>Subject:</strong> %s</p>
  </div>
  <div style="background-color: #ffffff; padding: 20px; border: 1px solid #e0e0e0; border-radius: 8px; margin: 20px 0;">
    <h3 style="color: #1F3A5F; margin-top: 0;">Message:</h3>
    <p style="white-space: pre-wrap; line-height: 1.6;">%s</p>
  </div>
  <div style="color: #666; font-size: 12px; margin-top: 30px; padding-top: 20px; border-top: 1px solid #e0e0e0;">
    <p>This is an automated notification from your portfolio website.</p>
    <p>Reply to this email or contact the visitor directly using the information above.</p>
  </div>
</div>`,
		html.EscapeString(visitorName),
		html.EscapeString(visitorEmail),
		html.EscapeString(visitorEmail),
		phoneRow,
		html.EscapeString(subject),
		html.EscapeString(message),
	)
}

func notificationText(visitorName, visitorEmail, visitorPhone, subject, message string) string {
	phoneLine := ""
	if visitorPhone != "" {
		phoneLine = "Phone: " + visitorPhone + "\n"
	}
	return fmt.Sprintf("New Contact Form Submission\n\nFrom: %s\nEmail: %s\n%sSubject: %s\n\nMessage:\n%s",
		visitorName, visitorEmail, phoneLine, subject, message)
}

func confirmationHTML(visitorName, ownerName string) string {
	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #1F3A5F;">Thank You for Reaching Out</h2>
  <p>Hi %s,</p>
  <p>Thank you for submitting your message through my portfolio website. I have received your inquiry and will get back to you as soon as possible.</p>
  <div style="background-color: #f5f5f5; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <p><strong>Expected Response Time:</strong> 24-48 hours</p>
    <p>I review all inquiries carefully and will respond with a personalized message.</p>
  </div>
  <p>If you need to reach me urgently, please feel free to contact me directly.</p>
  <p>Best regards,<br/><strong>%s</strong></p>
  <div style="color: #666; font-size: 12px; margin-top: 30px; padding-top: 20px; border-top: 1px solid #e0e0e0;">
    <p>This is an automated confirmation email. Please do not reply to this message.</p>
  </div>
</div>`,
		html.EscapeString(visitorName),
		html.EscapeString(ownerName),
	)
}

func confirmationText(visitorName, ownerName string) string {
	return fmt.Sprintf("Thank You for Reaching Out\n\nHi %s,\n\nThank you for submitting your message through my portfolio website. I have received your inquiry and will get back to you as soon as possible.\n\nExpected Response Time: 24-48 hours\n\nBest regards,\n%s",
		visitorName, ownerName)
}
