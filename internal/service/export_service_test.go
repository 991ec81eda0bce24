package service

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/abitur-api/internal/models"
	appErrors "github.com/noah-isme/abitur-api/pkg/errors"
	"github.com/noah-isme/abitur-api/pkg/export"
)

type failingRenderer struct{}

func (failingRenderer) Render(doc export.Document) ([]byte, error) {
	return nil, errors.New("boom")
}

func newExportServiceForTest() *ExportService {
	svc := NewExportService(ExportConfig{}, zap.NewNop(), nil, nil)
	svc.now = func() time.Time { return time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC) }
	return svc
}

func TestParseFormat(t *testing.T) {
	format, err := ParseFormat("", ExportFormatJSON)
	require.NoError(t, err)
	assert.Equal(t, ExportFormatJSON, format)

	format, err = ParseFormat(" PDF ", ExportFormatJSON)
	require.NoError(t, err)
	assert.Equal(t, ExportFormatPDF, format)

	_, err = ParseFormat("xlsx", ExportFormatJSON)
	assert.ErrorIs(t, err, appErrors.ErrUnsupportedFormat)
}

func TestExportJSONMatchesImportShape(t *testing.T) {
	svc := newExportServiceForTest()
	subjects := referenceSelection()

	file, err := svc.Render(ExportFormatJSON, "", subjects, Evaluate(subjects))
	require.NoError(t, err)
	assert.Equal(t, "abitur-daten-2026-03-14.json", file.Filename)
	assert.Equal(t, "application/json", file.ContentType)

	var decoded []models.Subject
	require.NoError(t, json.Unmarshal(file.Payload, &decoded))
	assert.Equal(t, subjects, decoded)
	assert.Contains(t, string(file.Payload), `"examType": "Written"`)
}

func TestExportJSONEmptyList(t *testing.T) {
	file, err := newExportServiceForTest().Render(ExportFormatJSON, "", nil, Evaluate(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(file.Payload))
}

func TestExportCSVReport(t *testing.T) {
	svc := newExportServiceForTest()
	subjects := referenceSelection()

	file, err := svc.Render(ExportFormatCSV, "", subjects, Evaluate(subjects))
	require.NoError(t, err)
	assert.Equal(t, "abitur-daten-2026-03-14.csv", file.Filename)

	reader := csv.NewReader(bytes.NewReader(file.Payload))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	require.NoError(t, err)

	assert.Equal(t, reportHeaders, records[0])
	assert.Equal(t, subjects[0].Name, records[1][0])

	summary := map[string]string{}
	for _, record := range records[len(subjects)+1:] {
		if len(record) == 2 {
			summary[record[0]] = record[1]
		}
	}
	assert.Equal(t, "580", summary["Gesamtpunkte"])
	assert.Equal(t, "2.4", summary["Durchschnittsnote"])
	assert.Equal(t, "24/24", summary["Grundkurse"])
	assert.Equal(t, "ja", summary["Gültige Auswahl"])
}

func TestExportCSVCarriesMessages(t *testing.T) {
	file, err := newExportServiceForTest().Render(ExportFormatCSV, "", nil, Evaluate(nil))
	require.NoError(t, err)
	assert.Contains(t, string(file.Payload), "exactly 2 advanced courses required")
	assert.Contains(t, string(file.Payload), "nein")
}

func TestExportPDF(t *testing.T) {
	subjects := referenceSelection()
	file, err := newExportServiceForTest().Render(ExportFormatPDF, "Mein Abitur", subjects, Evaluate(subjects))
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.True(t, bytes.HasPrefix(file.Payload, []byte("%PDF")))
}

func TestExportRenderFailure(t *testing.T) {
	svc := NewExportService(ExportConfig{}, nil, failingRenderer{}, failingRenderer{})
	_, err := svc.Render(ExportFormatCSV, "", nil, Evaluate(nil))
	assert.ErrorIs(t, err, appErrors.ErrInternal)

	_, err = svc.Render(ExportFormat("xml"), "", nil, Evaluate(nil))
	assert.ErrorIs(t, err, appErrors.ErrUnsupportedFormat)
}
