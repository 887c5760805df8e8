package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgechain/forge-go/model/forge"
	"github.com/forgechain/forge-go/state/settings"
	"github.com/forgechain/forge-go/utils/unittest"
)

func enforcerWithRules(t *testing.T, rules string, signerKey []byte) *RuleEnforcer {
	reader := settings.Map{}
	if rules != "" {
		reader[settings.BlockValidationRulesKey] = rules
	}
	enforcer, err := NewRuleEnforcer(reader, signerKey, unittest.Logger())
	require.NoError(t, err)
	return enforcer
}

func TestNoRulesConfigured(t *testing.T) {
	enforcer := enforcerWithRules(t, "", unittest.PublicKeyFixture())

	allowed, err := enforcer.Evaluate([]*forge.Batch{unittest.BatchFixture(3)})
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestStructuralChecks(t *testing.T) {
	enforcer := enforcerWithRules(t, "", unittest.PublicKeyFixture())

	t.Run("empty batch", func(t *testing.T) {
		empty := &forge.Batch{}
		_, err := enforcer.Evaluate([]*forge.Batch{empty})
		assert.ErrorIs(t, err, ErrInvalidBatch)
	})

	t.Run("header commitment mismatch", func(t *testing.T) {
		batch := unittest.BatchFixture(2)
		batch.Header.TransactionIDs[1] = unittest.IdentifierFixture()
		_, err := enforcer.Evaluate([]*forge.Batch{batch})
		assert.ErrorIs(t, err, ErrInvalidBatch)
	})

	t.Run("header length mismatch", func(t *testing.T) {
		batch := unittest.BatchFixture(2)
		batch.Header.TransactionIDs = batch.Header.TransactionIDs[:1]
		_, err := enforcer.Evaluate([]*forge.Batch{batch})
		assert.ErrorIs(t, err, ErrInvalidBatch)
	})
}

func TestNofXRule(t *testing.T) {
	enforcer := enforcerWithRules(t, "NofX:2,intkey", unittest.PublicKeyFixture())

	withinLimit := []*forge.Batch{unittest.BatchFixture(2)}
	allowed, err := enforcer.Evaluate(withinLimit)
	require.NoError(t, err)
	assert.True(t, allowed)

	overLimit := []*forge.Batch{unittest.BatchFixture(2), unittest.BatchFixture(1)}
	allowed, err = enforcer.Evaluate(overLimit)
	require.NoError(t, err)
	assert.False(t, allowed)

	// transactions of other families do not count against the limit
	other := unittest.BatchWithTransactionsFixture(
		unittest.TransactionFixture(unittest.WithFamily("settings")),
	)
	allowed, err = enforcer.Evaluate([]*forge.Batch{unittest.BatchFixture(2), other})
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestXatYRule(t *testing.T) {
	enforcer := enforcerWithRules(t, "XatY:settings,0", unittest.PublicKeyFixture())

	good := unittest.BatchWithTransactionsFixture(
		unittest.TransactionFixture(unittest.WithFamily("settings")),
		unittest.TransactionFixture(),
	)
	allowed, err := enforcer.Evaluate([]*forge.Batch{good})
	require.NoError(t, err)
	assert.True(t, allowed)

	bad := unittest.BatchWithTransactionsFixture(
		unittest.TransactionFixture(),
		unittest.TransactionFixture(unittest.WithFamily("settings")),
	)
	allowed, err = enforcer.Evaluate([]*forge.Batch{bad})
	require.NoError(t, err)
	assert.False(t, allowed)

	// an unoccupied position never violates the rule
	far := enforcerWithRules(t, "XatY:settings,10", unittest.PublicKeyFixture())
	allowed, err = far.Evaluate([]*forge.Batch{unittest.BatchFixture(1)})
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestLocalRule(t *testing.T) {
	signerKey := unittest.PublicKeyFixture()
	enforcer := enforcerWithRules(t, "local:0", signerKey)

	signed := unittest.BatchWithTransactionsFixture(
		unittest.TransactionFixture(unittest.WithTransactionSigner(signerKey)),
	)
	allowed, err := enforcer.Evaluate([]*forge.Batch{signed})
	require.NoError(t, err)
	assert.True(t, allowed)

	foreign := unittest.BatchFixture(1)
	allowed, err = enforcer.Evaluate([]*forge.Batch{foreign})
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestCombinedRules(t *testing.T) {
	signerKey := unittest.PublicKeyFixture()
	enforcer := enforcerWithRules(t, "NofX:1,settings;XatY:settings,0;local:0", signerKey)

	sequence := []*forge.Batch{
		unittest.BatchWithTransactionsFixture(
			unittest.TransactionFixture(
				unittest.WithFamily("settings"),
				unittest.WithTransactionSigner(signerKey),
			),
		),
		unittest.BatchFixture(2),
	}
	allowed, err := enforcer.Evaluate(sequence)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestUnknownRuleIgnored(t *testing.T) {
	enforcer := enforcerWithRules(t, "Frobnicate:1,2;NofX:0,settings", unittest.PublicKeyFixture())

	allowed, err := enforcer.Evaluate([]*forge.Batch{unittest.BatchFixture(1)})
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestMalformedRules(t *testing.T) {
	for _, rules := range []string{
		"NofX",
		"NofX:notanumber,intkey",
		"XatY:intkey,notanumber",
		"local:zero",
	} {
		reader := settings.Map{settings.BlockValidationRulesKey: rules}
		_, err := NewRuleEnforcer(reader, unittest.PublicKeyFixture(), unittest.Logger())
		assert.Error(t, err, "rules %q should not parse", rules)
	}
}
