package helper

import (
	"fmt"
	"log"
	"net/smtp"

	"travel_agency/config"

	"github.com/jordan-wright/email"
)

// SendPasswordResetEmail gửi link đặt lại mật khẩu (async)
func SendPasswordResetEmail(to string, token string) {
	go func() {
		resetLink := fmt.Sprintf("%s/reset-password?token=%s", config.ConfigDefault("FRONTEND_URL", "http://localhost:3000"), token)

		e := email.NewEmail()
		e.From = config.Config("SMTP_FROM")
		e.To = []string{to}
		e.Subject = "Đặt lại mật khẩu"
		e.HTML = []byte(fmt.Sprintf(`
			<p>Bạn vừa yêu cầu đặt lại mật khẩu.</p>
			<p>Nhấn vào liên kết sau để tạo mật khẩu mới (hết hạn sau 30 phút):</p>
			<p><a href="%s">%s</a></p>
			<p>Nếu không phải bạn, vui lòng bỏ qua email này.</p>
		`, resetLink, resetLink))

		addr := fmt.Sprintf("%s:%s", config.Config("SMTP_HOST"), config.ConfigDefault("SMTP_PORT", "587"))
		auth := smtp.PlainAuth("", config.Config("SMTP_USERNAME"), config.Config("SMTP_PASSWORD"), config.Config("SMTP_HOST"))

		if err := e.Send(addr, auth); err != nil {
			log.Printf("Lỗi gửi email đặt lại mật khẩu cho %s: %v", to, err)
		}
	}()
}
