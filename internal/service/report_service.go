package service

import (
	"bytes"
	"fmt"
	"net/url"
	"time"

	"endoguard/internal/model"

	"github.com/fogleman/gg"
	"github.com/signintech/gopdf"
)

const (
	pdfMarginLeft = 40.0
	pdfTextWidth  = 515.0
	pdfPageBottom = 790.0
)

// riskColor maps a tier to its display RGB
func riskColor(level model.RiskLevel) (uint8, uint8, uint8) {
	switch level {
	case model.RiskLow:
		return 34, 160, 80
	case model.RiskModerate:
		return 235, 150, 30
	case model.RiskHigh:
		return 220, 60, 50
	case model.RiskVeryHigh:
		return 140, 20, 20
	default:
		return 90, 90, 90
	}
}

// ReportFileName names the PDF download for one result
func ReportFileName(generatedAt time.Time) string {
	return fmt.Sprintf("EndoGuard_Report_%s.pdf", generatedAt.Format("2006-01-02"))
}

// CardFileName names the PNG share card for one result
func CardFileName(generatedAt time.Time) string {
	return fmt.Sprintf("EndoGuard-Results-%d.png", generatedAt.Unix())
}

// ReportService renders completed results as downloadable artifacts
type ReportService struct {
	fontPaths []string
}

// NewReportService creates a new report service
func NewReportService() *ReportService {
	return &ReportService{
		fontPaths: []string{
			"/usr/share/fonts/ttf-dejavu/DejaVuSans.ttf",
			"/usr/share/fonts/dejavu/DejaVuSans.ttf",
			"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		},
	}
}

type pdfWriter struct {
	pdf  *gopdf.GoPdf
	page int
}

func footerText(page int) string {
	return fmt.Sprintf("EndoGuard | Page %d", page)
}

// footer stamps the page number at the bottom margin of the current page.
// Called once per page, right before the page is left behind.
func (w *pdfWriter) footer() {
	w.page++
	y := w.pdf.GetY()
	w.pdf.SetFont("DejaVu", "", 8)
	w.pdf.SetTextColor(120, 120, 120)
	w.pdf.SetY(pdfPageBottom + 15)
	w.pdf.SetX(pdfMarginLeft)
	w.pdf.Cell(nil, footerText(w.page))
	w.pdf.SetTextColor(0, 0, 0)
	w.pdf.SetY(y)
}

func (w *pdfWriter) ensureSpace(height float64) {
	if w.pdf.GetY()+height > pdfPageBottom {
		w.footer()
		w.pdf.AddPage()
		w.pdf.SetY(40)
	}
}

func (w *pdfWriter) line(text string, size float64) error {
	if err := w.pdf.SetFont("DejaVu", "", size); err != nil {
		return err
	}
	lines, _ := w.pdf.SplitText(text, pdfTextWidth)
	for _, l := range lines {
		w.ensureSpace(size + 6)
		w.pdf.SetX(pdfMarginLeft)
		w.pdf.Cell(nil, l)
		w.pdf.Br(size + 4)
	}
	return nil
}

func (w *pdfWriter) heading(text string) error {
	w.ensureSpace(30)
	w.pdf.Br(10)
	return w.line(text, 14)
}

// ReportSubject identifies who the report is about. Both fields are
// optional; anonymous reports carry neither.
type ReportSubject struct {
	Email string
	Input *model.AssessmentInput
}

// subjectLines formats the patient-info block, skipping anything not
// collected
func subjectLines(subject *ReportSubject) []string {
	if subject == nil {
		return nil
	}
	var lines []string
	if subject.Email != "" {
		lines = append(lines, "Prepared for: "+subject.Email)
	}
	if in := subject.Input; in != nil {
		if in.Age > 0 {
			lines = append(lines, fmt.Sprintf("Age: %d", in.Age))
		}
		if in.BiologicalSex != "" {
			lines = append(lines, "Biological sex: "+string(in.BiologicalSex))
		}
		if in.MenstrualStatus != "" {
			lines = append(lines, "Menstrual status: "+string(in.MenstrualStatus))
		}
	}
	return lines
}

// BuildPDF renders the full printable report and returns its bytes
func (s *ReportService) BuildPDF(res *model.AssessmentResult, subject *ReportSubject) ([]byte, error) {
	pdf := gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})
	pdf.AddPage()

	var fontErr error
	fontLoaded := false
	for _, path := range s.fontPaths {
		if err := pdf.AddTTFFont("DejaVu", path); err == nil {
			fontLoaded = true
			break
		} else {
			fontErr = err
		}
	}
	if !fontLoaded {
		return nil, fmt.Errorf("failed to load report font, install ttf-dejavu: %w", fontErr)
	}

	w := &pdfWriter{pdf: &pdf}
	pdf.SetY(40)
	pdf.SetX(pdfMarginLeft)

	if err := w.line("EndoGuard Hormone Health Report", 20); err != nil {
		return nil, err
	}
	if err := w.line(fmt.Sprintf("Generated %s", res.GeneratedAt.Format("January 2, 2006")), 10); err != nil {
		return nil, err
	}
	for _, info := range subjectLines(subject) {
		if err := w.line(info, 10); err != nil {
			return nil, err
		}
	}
	pdf.Br(10)

	// Overall risk with the tier shown in its color
	if err := w.heading("Overall Risk"); err != nil {
		return nil, err
	}
	r, g, b := riskColor(res.OverallRisk.Level)
	pdf.SetTextColor(r, g, b)
	if err := w.line(fmt.Sprintf("%s (%d/100)", res.OverallRisk.Level.Label(), res.OverallRisk.Score), 16); err != nil {
		return nil, err
	}
	pdf.SetTextColor(0, 0, 0)

	if err := w.heading("EDC Exposure"); err != nil {
		return nil, err
	}
	if err := w.line(fmt.Sprintf("Exposure score: %d/100 (%s)", res.EDCExposure.RiskScore, res.EDCExposure.RiskLevel.Label()), 11); err != nil {
		return nil, err
	}
	for _, factor := range res.EDCExposure.RiskFactors {
		if err := w.line("- "+factor, 11); err != nil {
			return nil, err
		}
	}

	if err := w.heading("Hormone Health"); err != nil {
		return nil, err
	}
	if err := w.line(fmt.Sprintf("%d symptoms reported, severity %d/10", res.HormoneHealth.SymptomCount, res.HormoneHealth.SymptomSeverity), 11); err != nil {
		return nil, err
	}
	for _, system := range res.HormoneHealth.SystemsAffected {
		if err := w.line("- "+system+" system", 11); err != nil {
			return nil, err
		}
	}

	if res.Demographics != nil {
		if err := w.heading("Body Mass Index"); err != nil {
			return nil, err
		}
		if err := w.line(fmt.Sprintf("BMI %.1f (%s)", res.Demographics.BMI, res.Demographics.BMICategory), 11); err != nil {
			return nil, err
		}
	}

	if res.AIInsights.State == model.SectionPresent {
		if err := w.heading("AI Insights"); err != nil {
			return nil, err
		}
		if err := w.line(res.AIInsights.Data.SymptomPattern, 11); err != nil {
			return nil, err
		}
		for _, rec := range res.AIInsights.Data.PersonalizedRecommendations {
			if err := w.line("- "+rec, 11); err != nil {
				return nil, err
			}
		}
		if res.AIInsights.Data.Disclaimer != "" {
			if err := w.line(res.AIInsights.Data.Disclaimer, 9); err != nil {
				return nil, err
			}
		}
	}

	if len(res.TestRecommendations) > 0 {
		if err := w.heading("Suggested Lab Tests"); err != nil {
			return nil, err
		}
		for _, panel := range res.TestRecommendations {
			if err := w.line(panel.Name, 12); err != nil {
				return nil, err
			}
			for _, test := range panel.Tests {
				line := fmt.Sprintf("- %s [%s, %s]: %s", test.Name, test.Priority, test.Cost, test.Rationale)
				if err := w.line(line, 10); err != nil {
					return nil, err
				}
			}
			pdf.Br(5)
		}
	}

	if err := w.heading("Recommendations"); err != nil {
		return nil, err
	}
	for _, rec := range res.Recommendations {
		if err := w.line(fmt.Sprintf("[%s] %s", rec.Priority, rec.Text), 11); err != nil {
			return nil, err
		}
		if rec.Rationale != "" {
			if err := w.line("  "+rec.Rationale, 9); err != nil {
				return nil, err
			}
		}
	}

	if err := w.heading("Next Steps"); err != nil {
		return nil, err
	}
	for _, step := range res.NextSteps {
		if err := w.line(fmt.Sprintf("%d. %s", step.Step, step.Action), 11); err != nil {
			return nil, err
		}
	}

	pdf.Br(15)
	if err := w.line("This report is educational and is not a medical diagnosis.", 8); err != nil {
		return nil, err
	}
	w.footer()

	var buf bytes.Buffer
	if _, err := pdf.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// BuildShareCard renders the social share image (1200x630) and returns PNG
// bytes
func (s *ReportService) BuildShareCard(res *model.AssessmentResult) ([]byte, error) {
	const width, height = 1200, 630

	dc := gg.NewContext(width, height)

	dc.SetRGB255(18, 32, 47)
	dc.Clear()

	// Brand bar
	dc.SetRGB255(62, 180, 162)
	dc.DrawRectangle(0, 0, width, 8)
	dc.Fill()

	dc.SetRGB255(255, 255, 255)
	if err := s.loadCardFont(dc, 52); err != nil {
		return nil, err
	}
	dc.DrawString("EndoGuard", 80, 110)

	if err := s.loadCardFont(dc, 30); err != nil {
		return nil, err
	}
	dc.SetRGB255(170, 185, 200)
	dc.DrawString("Hormone Health Assessment", 80, 160)

	// Score and tier
	r, g, b := riskColor(res.OverallRisk.Level)
	dc.SetRGB255(int(r), int(g), int(b))
	if err := s.loadCardFont(dc, 120); err != nil {
		return nil, err
	}
	dc.DrawString(fmt.Sprintf("%d", res.OverallRisk.Score), 80, 340)

	// Tier marker: DejaVu has no color emoji, so a filled dot in the tier
	// color stands in
	dc.DrawCircle(98, 396, 16)
	dc.Fill()

	if err := s.loadCardFont(dc, 44); err != nil {
		return nil, err
	}
	dc.DrawString(res.OverallRisk.Level.Label()+" RISK", 134, 410)

	// Stat row
	dc.SetRGB255(255, 255, 255)
	if err := s.loadCardFont(dc, 28); err != nil {
		return nil, err
	}
	stats := []string{
		fmt.Sprintf("%d symptoms", res.HormoneHealth.SymptomCount),
		fmt.Sprintf("severity %d/10", res.HormoneHealth.SymptomSeverity),
		fmt.Sprintf("EDC exposure %d/100", res.EDCExposure.RiskScore),
	}
	x := 80.0
	for _, stat := range stats {
		dc.DrawString(stat, x, 520)
		sw, _ := dc.MeasureString(stat)
		x += sw + 60
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode share card: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *ReportService) loadCardFont(dc *gg.Context, points float64) error {
	var err error
	for _, path := range s.fontPaths {
		if err = dc.LoadFontFace(path, points); err == nil {
			return nil
		}
	}
	return fmt.Errorf("failed to load share card font, install ttf-dejavu: %w", err)
}

// ShareLink is one prefilled social share URL
type ShareLink struct {
	Network string `json:"network"`
	URL     string `json:"url"`
}

// ShareLinks builds prefilled share URLs for a result. resultURL is the
// public page for this assessment.
func ShareLinks(res *model.AssessmentResult, resultURL string) []ShareLink {
	text := fmt.Sprintf(
		"My EndoGuard hormone health score is %d/100 (%s risk). Take the free assessment:",
		res.OverallRisk.Score, res.OverallRisk.Level.Label(),
	)

	return []ShareLink{
		{
			Network: "twitter",
			URL: "https://twitter.com/intent/tweet?text=" + url.QueryEscape(text) +
				"&url=" + url.QueryEscape(resultURL),
		},
		{
			Network: "facebook",
			URL:     "https://www.facebook.com/sharer/sharer.php?u=" + url.QueryEscape(resultURL),
		},
		{
			Network: "whatsapp",
			URL:     "https://wa.me/?text=" + url.QueryEscape(text+" "+resultURL),
		},
	}
}
