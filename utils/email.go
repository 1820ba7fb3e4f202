package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// BookingConfirmationData dữ liệu cho template email xác nhận đặt tour
type BookingConfirmationData struct {
	BookingReference string
	TourTitle        string
	Route            string
	Departure        string
	Passengers       int
	Seats            string
	BaseAmount       float64
	DiscountAmount   float64
	TotalAmount      float64
	DetailLink       string

	// thông tin hủy (chỉ dùng cho email hủy)
	RefundAmount float64
	CancelledAt  string
}

func smtpDialer() *gomail.Dialer {
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if port == 0 {
		port = 587
	}
	return gomail.NewDialer(os.Getenv("SMTP_HOST"), port, os.Getenv("SMTP_USERNAME"), os.Getenv("SMTP_PASSWORD"))
}

// SendBookingConfirmationEmail gửi email xác nhận kèm QR mã đặt chỗ (async)
func SendBookingConfirmationEmail(to string, data BookingConfirmationData) {
	go func() {
		tmpl, err := template.ParseFiles("templates/booking_confirmation.html")
		if err != nil {
			log.Printf("Lỗi load template email: %v", err)
			return
		}

		var body bytes.Buffer
		if err := tmpl.Execute(&body, data); err != nil {
			log.Printf("Lỗi render template email: %v", err)
			return
		}

		m := gomail.NewMessage()
		m.SetHeader("From", os.Getenv("SMTP_FROM"))
		m.SetHeader("To", to)
		m.SetHeader("Subject", "Xác nhận đặt tour - Mã: "+data.BookingReference)
		m.SetBody("text/html", body.String())

		// QR chứa mã đặt chỗ, nhúng inline qua CID
		qrBytes, err := GenerateQRCode(data.BookingReference, 400)
		if err != nil {
			log.Printf("Lỗi tạo QR: %v", err)
		} else {
			m.Embed("qr_booking.png",
				gomail.SetCopyFunc(func(w io.Writer) error {
					_, err := w.Write(qrBytes)
					return err
				}),
				gomail.SetHeader(map[string][]string{
					"Content-Type":        {"image/png"},
					"Content-ID":          {"<qr_booking_code>"},
					"Content-Disposition": {"inline"},
				}),
			)
		}

		if err := smtpDialer().DialAndSend(m); err != nil {
			log.Printf("Lỗi gửi email: %v", err)
		} else {
			log.Printf("Email xác nhận đặt tour đã gửi đến %s", to)
		}
	}()
}

// SendBookingCancelledEmail gửi email thông báo hủy (async)
func SendBookingCancelledEmail(to string, data BookingConfirmationData) {
	go func() {
		tmpl, err := template.ParseFiles("templates/booking_cancelled.html")
		if err != nil {
			log.Printf("Lỗi load template hủy: %v", err)
			return
		}

		var body bytes.Buffer
		if err := tmpl.Execute(&body, data); err != nil {
			log.Printf("Lỗi render template hủy: %v", err)
			return
		}

		m := gomail.NewMessage()
		m.SetHeader("From", os.Getenv("SMTP_FROM"))
		m.SetHeader("To", to)
		m.SetHeader("Subject", fmt.Sprintf("Hủy đặt tour - Mã: %s", data.BookingReference))
		m.SetBody("text/html", body.String())

		if err := smtpDialer().DialAndSend(m); err != nil {
			log.Printf("Lỗi gửi email hủy cho %s: %v", to, err)
		}
	}()
}
