package ocr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"creditnext/internal/models"
)

const sampleStatementOFX = `
OFXHEADER:100
DATA:OFXSGML
VERSION:102
SECURITY:NONE
ENCODING:USASCII
CHARSET:1252
COMPRESSION:NONE
OLDFILEUID:NONE
NEWFILEUID:NONE

<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<DTSERVER>20250131120000[0:GMT]
<LANGUAGE>ENG
</SONRS>
</SIGNONMSGSRSV1>
<BANKMSGSRSV1>
<STMTTRNRS>
<TRNUID>1
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<STMTRS>
<CURDEF>THB
<BANKACCTFROM>
<BANKID>014
<ACCTID>1234567890
<ACCTTYPE>SAVINGS
</BANKACCTFROM>
<BANKTRANLIST>
<DTSTART>20250101120000[0:GMT]
<DTEND>20250131120000[0:GMT]
<STMTTRN>
<TRNTYPE>CREDIT
<DTPOSTED>20250105120000[0:GMT]
<TRNAMT>4200.00
<FITID>2025010501
<NAME>CLIENT TRANSFER
</STMTTRN>
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20250110120000[0:GMT]
<TRNAMT>-950.25
<FITID>2025011001
<MEMO>MATERIALS
</STMTTRN>
<STMTTRN>
<TRNTYPE>OTHER
<DTPOSTED>20250111120000[0:GMT]
<TRNAMT>0.00
<FITID>2025011101
<NAME>ZERO ADJUSTMENT
</STMTTRN>
</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>3249.75
<DTASOF>20250131120000[0:GMT]
</LEDGERBAL>
</STMTRS>
</STMTTRNRS>
</BANKMSGSRSV1>
</OFX>
`

func TestParseOFX(t *testing.T) {
	txns, err := ParseOFX([]byte(sampleStatementOFX))
	require.NoError(t, err)
	require.Len(t, txns, 2)

	assert.Equal(t, "2025-01-05", txns[0].Date)
	assert.Equal(t, "CLIENT TRANSFER", txns[0].Description)
	assert.Equal(t, models.TransactionTypeIncome, txns[0].Type)
	assert.Equal(t, "4200", txns[0].Amount.String())

	assert.Equal(t, "2025-01-10", txns[1].Date)
	assert.Equal(t, "MATERIALS", txns[1].Description)
	assert.Equal(t, models.TransactionTypeExpense, txns[1].Type)
	assert.Equal(t, "950.25", txns[1].Amount.String())
}

func TestParseOFX_Invalid(t *testing.T) {
	_, err := ParseOFX([]byte("not an ofx file"))
	assert.Error(t, err)
}

func TestPreprocessOFX(t *testing.T) {
	in := "\n\n<SEVERITY>Warn</SEVERITY>\n<CODE\n"
	out := preprocessOFX(in)
	assert.Equal(t, "<SEVERITY>WARN</SEVERITY>\n<CODE>\n", out)
}
