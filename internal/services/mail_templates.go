package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/Mental-Health-Matters/Psych/domain"
)

func otpMail(code, username string, ttl time.Duration) (subject, text string) {
	subject = fmt.Sprintf("Your OTP code is %s", code)
	text = fmt.Sprintf(`Hi %s,

Your OTP code is %s.
This code will expire in %d minutes.

If you did not request this, please ignore this email.

Thank you,
The Psych Team`, username, code, int(ttl.Minutes()))
	return subject, text
}

func appointmentStudentMail(doctor domain.Doctor, selectedDate, selectedTime string) (subject, text string) {
	subject = fmt.Sprintf("Appointment Confirmation with %s", doctor.Name)
	text = fmt.Sprintf(`Dear Student,

This is to confirm that your appointment has been successfully booked with %s, a specialist in %s.

Appointment Details:
- Date: %s
- Time: %s
- Consultation Fee: $%.2f

Please join the link at your scheduled time. If you have any questions or need to reschedule, feel free to contact us in advance.

Thank you for choosing our services.

Best regards,
Psych Team`, doctor.Name, doctor.Specialization, selectedDate, selectedTime, doctor.Fee)
	return subject, text
}

func appointmentPsychiatristMail(studentName, selectedDate, selectedTime string, answers []domain.QuestionnaireAnswer) (subject, text string) {
	subject = fmt.Sprintf("New Appointment Booked - %s on %s", studentName, selectedDate)

	var responses strings.Builder
	for i, a := range answers {
		fmt.Fprintf(&responses, "%d. %s\nAnswer: %s\n\n", i+1, a.Question, a.SelectedAnswer)
	}

	text = fmt.Sprintf(`Dear Doctor,

A new appointment has been booked with you for a student requiring consultation.

Appointment Details:
- Student Name: %s
- Date: %s
- Time: %s

Preliminary Questionnaire (Student Response):
%s
Please review the above information prior to your consultation. Feel free to reach out if you need any additional context.

Best regards,
Psych Team`, studentName, selectedDate, selectedTime, responses.String())
	return subject, text
}
