package ticketprint

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"

	"github.com/phpdave11/gofpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/m04kA/SMC-TicketService/internal/domain"
)

// hmacSecret ключ подписи QR-кода на билете
const hmacSecret = "sharma-travelers-ticket-secret"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Service печать билета в PDF-файл с подписанным QR-кодом
type Service struct {
	title  string
	dir    string
	logger Logger
}

// NewService создает сервис печати билетов
// title заголовок на билете, dir каталог для PDF-файлов.
func NewService(title, dir string, logger Logger) *Service {
	return &Service{
		title:  title,
		dir:    dir,
		logger: logger,
	}
}

// qrPayload собирает содержимое QR-кода: id|направление|unix-время|подпись
func qrPayload(t *domain.Ticket) string {
	data := fmt.Sprintf("%s|%s|%d", t.ID, t.Destination, t.BookedAt.Unix())

	h := hmac.New(sha256.New, []byte(hmacSecret))
	h.Write([]byte(data))
	sig := base64.StdEncoding.EncodeToString(h.Sum(nil))

	return fmt.Sprintf("%s|%s", data, sig)
}

// Print записывает билет в PDF-файл и возвращает путь к нему
func (s *Service) Print(t *domain.Ticket) (string, error) {
	if t == nil {
		return "", ErrNilTicket
	}

	qrPNG, err := qrcode.Encode(qrPayload(t), qrcode.Medium, 256)
	if err != nil {
		s.logger.Error("TicketPrint: failed to generate QR code for %s: %v", t.ID, err)
		return "", fmt.Errorf("%w: qr code: %v", ErrRender, err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, s.title)
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Booking ID: %s", t.ID))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Passenger: %s", t.Name))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("From: %s  To: %s", t.Source, t.Destination))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Price: Rs. %d", t.Price))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Payment: %s", t.PaymentMethod))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Date: %s", t.BookedAt.Format(domain.DateTimeFormat)))
	pdf.Ln(12)

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 40, 40, 40, false, imageOpts, 0, "")

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		s.logger.Error("TicketPrint: failed to create directory %s: %v", s.dir, err)
		return "", fmt.Errorf("%w: create directory %s: %v", ErrIO, s.dir, err)
	}

	path := filepath.Join(s.dir, fmt.Sprintf("ticket-%s.pdf", t.ID))
	if err := pdf.OutputFileAndClose(path); err != nil {
		s.logger.Error("TicketPrint: failed to write %s: %v", path, err)
		return "", fmt.Errorf("%w: write %s: %v", ErrIO, path, err)
	}

	s.logger.Info("TicketPrint: wrote %s", path)
	return path, nil
}
