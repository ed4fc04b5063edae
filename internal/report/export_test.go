package report_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/sitehero/sitehero/internal/report"
)

func sampleTable() *report.Table {
	return &report.Table{
		Title:   "Open RFIs",
		Headers: []string{"number", "title", "status"},
		Rows: [][]string{
			{"RFI-001", "Anchor detail", "submitted"},
			{"RFI-002", "Curtain wall, north elevation", "answered"},
		},
	}
}

func TestRenderCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.RenderCSV(&buf, sampleTable()))

	want := "number,title,status\n" +
		"RFI-001,Anchor detail,submitted\n" +
		"RFI-002,\"Curtain wall, north elevation\",answered\n"
	require.Equal(t, want, buf.String())
}

func TestRenderXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.RenderXLSX(&buf, sampleTable()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, []string{"Report"}, f.GetSheetList())

	rows, err := f.GetRows("Report")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, []string{"number", "title", "status"}, rows[0])
	require.Equal(t, []string{"RFI-001", "Anchor detail", "submitted"}, rows[1])
}
