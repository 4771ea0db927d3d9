package validation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ValidatorTestSuite struct {
	suite.Suite
	v *Validator
}

type lineInput struct {
	Amount decimal.Decimal `json:"amount" validate:"non_negative_amount,max_amount"`
	Type   string          `json:"type" validate:"required,transaction_type"`
}

type ledgerInput struct {
	Transactions []lineInput `json:"transactions" validate:"max=3,dive"`
	Grade        string      `json:"grade" validate:"risk_grade"`
}

func TestValidatorTestSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}

func (s *ValidatorTestSuite) SetupTest() {
	s.v = NewValidator()
}

func (s *ValidatorTestSuite) TestValidLedger() {
	in := ledgerInput{
		Transactions: []lineInput{
			{Amount: decimal.NewFromInt(3500), Type: "Income"},
			{Amount: decimal.Zero, Type: "Expense"},
		},
		Grade: "B",
	}

	s.NoError(s.v.Struct(in))
}

func (s *ValidatorTestSuite) TestTransactionTypeIsCaseSensitive() {
	in := ledgerInput{Transactions: []lineInput{{Amount: decimal.NewFromInt(1), Type: "income"}}}

	err := s.v.Struct(in)
	s.Require().Error(err)

	fields := FieldErrors(err)
	s.Equal(map[string]string{"transactions[0].type": "must be Income or Expense"}, fields)
}

func (s *ValidatorTestSuite) TestNegativeAmount() {
	in := ledgerInput{Transactions: []lineInput{
		{Amount: decimal.NewFromInt(1), Type: "Income"},
		{Amount: decimal.NewFromFloat(-0.01), Type: "Expense"},
	}}

	fields := FieldErrors(s.v.Struct(in))
	s.Equal("must not be negative", fields["transactions[1].amount"])
}

func (s *ValidatorTestSuite) TestAmountCeiling() {
	in := ledgerInput{Transactions: []lineInput{
		{Amount: decimal.New(1, 12), Type: "Income"},
		{Amount: decimal.New(1, 13), Type: "Income"},
		{Amount: decimal.RequireFromString("1e400"), Type: "Income"},
	}}

	fields := FieldErrors(s.v.Struct(in))
	s.NotContains(fields, "transactions[0].amount")
	s.Equal("must not exceed 1000000000000", fields["transactions[1].amount"])
	s.Equal("must not exceed 1000000000000", fields["transactions[2].amount"])
}

func (s *ValidatorTestSuite) TestMissingType() {
	fields := FieldErrors(s.v.Struct(ledgerInput{Transactions: []lineInput{{}}}))
	s.Equal("is required", fields["transactions[0].type"])
}

func (s *ValidatorTestSuite) TestTooManyTransactions() {
	in := ledgerInput{Transactions: make([]lineInput, 4)}
	for i := range in.Transactions {
		in.Transactions[i] = lineInput{Type: "Income"}
	}

	fields := FieldErrors(s.v.Struct(in))
	s.Equal("must contain at most 3 entries", fields["transactions"])
}

func (s *ValidatorTestSuite) TestRiskGrade() {
	s.NoError(s.v.Struct(ledgerInput{Grade: ""}))

	fields := FieldErrors(s.v.Struct(ledgerInput{Grade: "E"}))
	s.Equal("must be one of: A B C D", fields["grade"])
}

func (s *ValidatorTestSuite) TestFieldErrors_NonValidationError() {
	s.Nil(FieldErrors(nil))
}

func (s *ValidatorTestSuite) TestGetValidator_Singleton() {
	s.Same(GetValidator(), GetValidator())
	s.NotNil(GetValidator().GetValidate())
}
