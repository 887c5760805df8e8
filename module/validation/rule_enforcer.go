// Package validation enforces the on-chain block validation rules against a
// proposed batch sequence.
//
// The rules are configured through the chain setting
// "forge.validator.block_validation_rules", a semicolon-separated list of
// rule expressions:
//
//	NofX:<n>,<family>   at most n transactions of the given family per block
//	XatY:<family>,<y>   position y of the block's transaction sequence, if
//	                    occupied, must hold a transaction of the given family
//	local:<y>[,<y>...]  transactions at the given positions must be signed
//	                    by the block signer
//
// Unknown rule names are ignored with a warning so that new rules can be
// activated on-chain before every validator understands them.
package validation

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/forgechain/forge-go/model/forge"
	"github.com/forgechain/forge-go/state/settings"
)

// ErrInvalidBatch indicates that a proposed batch is structurally invalid,
// independent of any configured rule.
var ErrInvalidBatch = errors.New("structurally invalid batch")

type rule interface {
	// allows reports whether the flattened transaction sequence satisfies
	// the rule for a block signed with the given key.
	allows(txns []*forge.Transaction, signerPublicKey []byte) bool
}

// RuleEnforcer evaluates complete prospective batch sequences against the
// chain's validation rules. Rules are sequence-level, so the enforcer must
// always be given the entire proposed content of the block, never a delta.
type RuleEnforcer struct {
	log             zerolog.Logger
	signerPublicKey []byte
	rules           []rule
}

// NewRuleEnforcer builds an enforcer from the chain settings in effect for
// the candidate and the public key the block will be signed with. A chain
// with no configured rules yields an enforcer that accepts everything
// structurally valid.
func NewRuleEnforcer(reader settings.Reader, signerPublicKey []byte, log zerolog.Logger) (*RuleEnforcer, error) {

	e := &RuleEnforcer{
		log:             log.With().Str("component", "rule_enforcer").Logger(),
		signerPublicKey: signerPublicKey,
	}

	value, err := reader.Get(settings.BlockValidationRulesKey)
	if errors.Is(err, settings.ErrNotSet) {
		return e, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read validation rules setting: %w", err)
	}

	rules, err := parseRules(value, e.log)
	if err != nil {
		return nil, fmt.Errorf("could not parse validation rules %q: %w", value, err)
	}
	e.rules = rules

	return e, nil
}

// Evaluate checks the entire proposed batch sequence. It returns false when
// a configured rule rejects the sequence, and an error (wrapping
// ErrInvalidBatch where applicable) when the sequence cannot be evaluated
// at all.
func (e *RuleEnforcer) Evaluate(batches []*forge.Batch) (bool, error) {

	var txns []*forge.Transaction
	for _, batch := range batches {
		if len(batch.Transactions) == 0 {
			return false, fmt.Errorf("batch %x contains no transactions: %w", batch.ID(), ErrInvalidBatch)
		}
		if len(batch.Transactions) != len(batch.Header.TransactionIDs) {
			return false, fmt.Errorf("batch %x header commits to %d transactions, contains %d: %w",
				batch.ID(), len(batch.Header.TransactionIDs), len(batch.Transactions), ErrInvalidBatch)
		}
		for i, txn := range batch.Transactions {
			if txn.ID() != batch.Header.TransactionIDs[i] {
				return false, fmt.Errorf("batch %x transaction %d does not match header commitment: %w",
					batch.ID(), i, ErrInvalidBatch)
			}
			txns = append(txns, txn)
		}
	}

	for _, r := range e.rules {
		if !r.allows(txns, e.signerPublicKey) {
			return false, nil
		}
	}

	return true, nil
}

func parseRules(value string, log zerolog.Logger) ([]rule, error) {

	var rules []rule
	for _, expr := range strings.Split(value, ";") {
		expr = strings.TrimSpace(expr)
		if expr == "" {
			continue
		}

		name, argString, found := strings.Cut(expr, ":")
		if !found {
			return nil, fmt.Errorf("rule %q has no arguments", expr)
		}
		args := strings.Split(argString, ",")

		switch name {
		case "NofX":
			if len(args) != 2 {
				return nil, fmt.Errorf("NofX takes 2 arguments, got %d", len(args))
			}
			limit, err := strconv.Atoi(strings.TrimSpace(args[0]))
			if err != nil {
				return nil, fmt.Errorf("invalid NofX limit %q: %w", args[0], err)
			}
			rules = append(rules, &nOfXRule{limit: limit, family: strings.TrimSpace(args[1])})

		case "XatY":
			if len(args) != 2 {
				return nil, fmt.Errorf("XatY takes 2 arguments, got %d", len(args))
			}
			position, err := strconv.Atoi(strings.TrimSpace(args[1]))
			if err != nil {
				return nil, fmt.Errorf("invalid XatY position %q: %w", args[1], err)
			}
			rules = append(rules, &xAtYRule{family: strings.TrimSpace(args[0]), position: position})

		case "local":
			positions := make([]int, 0, len(args))
			for _, arg := range args {
				position, err := strconv.Atoi(strings.TrimSpace(arg))
				if err != nil {
					return nil, fmt.Errorf("invalid local position %q: %w", arg, err)
				}
				positions = append(positions, position)
			}
			rules = append(rules, &localRule{positions: positions})

		default:
			log.Warn().Str("rule", name).Msg("ignoring unknown validation rule")
		}
	}

	return rules, nil
}

// nOfXRule allows at most limit transactions of the given family.
type nOfXRule struct {
	limit  int
	family string
}

func (r *nOfXRule) allows(txns []*forge.Transaction, _ []byte) bool {
	count := 0
	for _, txn := range txns {
		if txn.Header.FamilyName == r.family {
			count++
			if count > r.limit {
				return false
			}
		}
	}
	return true
}

// xAtYRule requires that position y of the transaction sequence, if
// occupied, holds a transaction of the given family.
type xAtYRule struct {
	family   string
	position int
}

func (r *xAtYRule) allows(txns []*forge.Transaction, _ []byte) bool {
	if r.position < 0 || r.position >= len(txns) {
		return true
	}
	return txns[r.position].Header.FamilyName == r.family
}

// localRule requires that transactions at the given positions are signed by
// the block signer.
type localRule struct {
	positions []int
}

func (r *localRule) allows(txns []*forge.Transaction, signerPublicKey []byte) bool {
	for _, position := range r.positions {
		if position < 0 || position >= len(txns) {
			continue
		}
		if !bytes.Equal(txns[position].Header.SignerPublicKey, signerPublicKey) {
			return false
		}
	}
	return true
}
