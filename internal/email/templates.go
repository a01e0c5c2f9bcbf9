package email

import "fmt"

// Acknowledgement templates for captured enquiries. Kept as plain string
// builders, the bodies are short and do not warrant html/template.

func StudentEnquiryAck(name string) (subject, text, html string) {
	subject = "We received your enquiry"
	text = fmt.Sprintf(
		"Hi %s,\n\nThanks for reaching out. One of our counselors will contact you shortly to discuss the course details.\n\nEduBridge Team",
		name,
	)
	html = fmt.Sprintf(
		"<p>Hi %s,</p><p>Thanks for reaching out. One of our counselors will contact you shortly to discuss the course details.</p><p>EduBridge Team</p>",
		name,
	)
	return subject, text, html
}

func EnterpriseEnquiryAck(companyName string) (subject, text, html string) {
	subject = "Your corporate training enquiry"
	text = fmt.Sprintf(
		"Hello,\n\nThank you for your interest in corporate training for %s. Our team will get back to you with a tailored proposal.\n\nEduBridge Team",
		companyName,
	)
	html = fmt.Sprintf(
		"<p>Hello,</p><p>Thank you for your interest in corporate training for %s. Our team will get back to you with a tailored proposal.</p><p>EduBridge Team</p>",
		companyName,
	)
	return subject, text, html
}

func FacultyEnquiryAck(name string) (subject, text, html string) {
	subject = "Your application has been received"
	text = fmt.Sprintf(
		"Hi %s,\n\nThank you for applying to teach with us. Our HR team will review your profile and reach out if there is a fit.\n\nEduBridge Team",
		name,
	)
	html = fmt.Sprintf(
		"<p>Hi %s,</p><p>Thank you for applying to teach with us. Our HR team will review your profile and reach out if there is a fit.</p><p>EduBridge Team</p>",
		name,
	)
	return subject, text, html
}
