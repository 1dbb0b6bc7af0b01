package reconcile

import (
	"testing"

	"inventory-auditor/core/ledger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeReport(t *testing.T) {
	rows := []Row{
		{Key: "ABC-1", DisplayKey: "ABC-1", FBAQuantity: intPtr(5), StorefrontQuantity: intPtr(5), Status: StatusMatch},
		{Key: "X", DisplayKey: "x", FBAQuantity: intPtr(3), StorefrontQuantity: intPtr(7), Status: StatusMismatch},
		{Key: "Y", DisplayKey: "Y", FBAQuantity: intPtr(2), Status: StatusMissingInStorefront},
		{Key: "Z", DisplayKey: "Z", StorefrontQuantity: intPtr(1), Status: StatusMissingInFBA},
	}

	report, err := EncodeReport(rows)
	require.NoError(t, err)

	want := "identifier,fba_quantity,storefront_quantity,status\n" +
		"ABC-1,5,5,Match\n" +
		"x,3,7,Mismatch\n" +
		"Y,2,,MissingInStorefront\n" +
		"Z,,1,MissingInFBA\n"
	assert.Equal(t, want, string(report))
}

func TestEncodeReport_Empty(t *testing.T) {
	report, err := EncodeReport(nil)
	require.NoError(t, err)
	assert.Equal(t, "identifier,fba_quantity,storefront_quantity,status\n", string(report))
}

// TestEncodeReport_UnsetStatus covers the defensive invariant check: a
// row without a status is a classifier defect, not bad input.
func TestEncodeReport_UnsetStatus(t *testing.T) {
	rows := []Row{{Key: "A", DisplayKey: "A", FBAQuantity: intPtr(1), StorefrontQuantity: intPtr(1)}}

	report, err := EncodeReport(rows)
	assert.Nil(t, report)

	var serr *SerializationError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "A", serr.Key)
}

// TestReport_ByteIdentical verifies end-to-end determinism: two runs over
// the same inputs in different orderings produce identical bytes.
func TestReport_ByteIdentical(t *testing.T) {
	fba := []ledger.Record{
		{Key: "b", Quantity: 2, Source: ledger.SourceFBA},
		{Key: "a", Quantity: 1, Source: ledger.SourceFBA},
	}
	storefront := []ledger.Record{
		{Key: "A", Quantity: 1, Source: ledger.SourceStorefront},
		{Key: "c", Quantity: 3, Source: ledger.SourceStorefront},
	}

	first, err := Report(fba, storefront, Options{})
	require.NoError(t, err)

	shuffledFBA := []ledger.Record{fba[1], fba[0]}
	shuffledStorefront := []ledger.Record{storefront[1], storefront[0]}

	second, err := Report(shuffledFBA, shuffledStorefront, Options{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestReport_PropagatesEngineError(t *testing.T) {
	dupes := []ledger.Record{
		{Key: "x", Quantity: 1, Source: ledger.SourceFBA},
		{Key: "x", Quantity: 2, Source: ledger.SourceFBA},
	}

	report, err := Report(dupes, nil, Options{})
	assert.Nil(t, report)

	var malformed *ledger.MalformedInputError
	assert.ErrorAs(t, err, &malformed)
}
