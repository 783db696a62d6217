package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"settletrack-backend/models"
)

func TestWriteCasesXLSX(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteCasesXLSX(&buf, []*models.Case{exportCase()}))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(exportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Case Name", rows[0][0])
	assert.Equal(t, "Summary", rows[0][17])
	assert.Equal(t, "In re Acme, Inc. Data Breach Litigation", rows[1][0])
	assert.Equal(t, "SSN; Email", rows[1][8])
}
