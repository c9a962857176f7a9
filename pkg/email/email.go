// Package email, uygulama genelinde email gönderimi için soyutlama katmanı sağlar.
//
// EmailSender interface'i ile email gönderim detayları soyutlanır.
// Şu anki implementasyon Resend API kullanır. Farklı bir sağlayıcıya geçmek
// için sadece yeni bir implementasyon yazıp constructor'da değiştirmek yeterli.
//
// Bu paket dışarıya iki şey sunar:
// 1. EmailSender interface — handler'lar buna bağımlı olur
// 2. NewResendSender constructor — main.go'da wire-up için
package email

import (
	"context"
	"fmt"
	"strings"

	"github.com/resend/resend-go/v3"
)

// EmailSender, email gönderimi için interface.
type EmailSender interface {
	// SendNewsletterPreview, admin'in ürettiği bülten metnini test amacıyla
	// verilen adrese gönderir. body düz metindir — basit bir HTML şablona sarılır.
	SendNewsletterPreview(ctx context.Context, toEmail, subject, body string) error
}

// resendSender, Resend API ile email gönderen EmailSender implementasyonu.
type resendSender struct {
	client    *resend.Client
	fromEmail string // Gönderici adresi (ör: noreply@emlakkit.app)
}

// NewResendSender, Resend API client'ı ile yeni bir EmailSender oluşturur.
//
// apiKey: Resend dashboard'dan alınan API key (re_xxxxxxxx formatında).
// fromEmail: Gönderici email adresi — Resend'de doğrulanmış domain altında olmalı.
func NewResendSender(apiKey, fromEmail string) EmailSender {
	return &resendSender{
		client:    resend.NewClient(apiKey),
		fromEmail: fromEmail,
	}
}

// SendNewsletterPreview, bülten önizleme email'i gönderir.
//
// Gövde üretici çıktısıdır (düz metin) — satır sonları <br> ile korunur,
// içerik minimal bir şablona gömülür. Bu bir TEST gönderimidir: toplu
// gönderim, abone listesi veya unsubscribe akışı bu katmanda yoktur.
func (s *resendSender) SendNewsletterPreview(ctx context.Context, toEmail, subject, body string) error {
	htmlBody := strings.ReplaceAll(body, "\n", "<br>\n")

	html := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="margin:0;padding:0;background-color:#f4f4f5;font-family:Arial,Helvetica,sans-serif;">
  <table width="100%%" cellpadding="0" cellspacing="0" style="background-color:#f4f4f5;padding:40px 0;">
    <tr>
      <td align="center">
        <table width="560" cellpadding="0" cellspacing="0" style="background-color:#ffffff;border-radius:8px;padding:40px;">
          <tr>
            <td>
              <h1 style="color:#18181b;font-size:22px;margin:0 0 24px 0;">emlakkit</h1>
              <p style="color:#3f3f46;font-size:15px;line-height:1.7;margin:0;">
                %s
              </p>
              <p style="color:#a1a1aa;font-size:12px;line-height:1.6;margin:32px 0 0 0;">
                Bu bir test gönderimidir — emlakkit bülten üreticisi ile oluşturuldu.
              </p>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`, htmlBody)

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("emlakkit <%s>", s.fromEmail),
		To:      []string{toEmail},
		Subject: subject,
		Html:    html,
	}

	_, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to send newsletter preview: %w", err)
	}

	return nil
}
