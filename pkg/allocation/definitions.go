package allocation

import (
	"context"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/chris/kudos-ledger/pkg/cadence"
	"github.com/chris/kudos-ledger/pkg/models"
)

// definitionFile is the TOML layout of a definitions file:
//
//	[[definition]]
//	id = "monthly-giveable"
//	name = "Monthly giveable budget"
//	amount = 100
//	cadence = "monthly"
//	balance_class = "giveable"
//	receivers = []     # empty: every wallet
//	active = true      # default
type definitionFile struct {
	Definitions []definitionEntry `toml:"definition"`
}

type definitionEntry struct {
	Id           string   `toml:"id"`
	Name         string   `toml:"name"`
	Amount       int64    `toml:"amount"`
	Cadence      string   `toml:"cadence"`
	BalanceClass string   `toml:"balance_class"`
	Receivers    []string `toml:"receivers"`
	Active       *bool    `toml:"active"`
}

// LoadDefinitions parses and validates a TOML definitions file.
func LoadDefinitions(r io.Reader) ([]models.AllocationDefinition, error) {
	var file definitionFile
	if _, err := toml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to decode definitions: %w", err)
	}

	seen := make(map[string]struct{}, len(file.Definitions))
	defs := make([]models.AllocationDefinition, 0, len(file.Definitions))
	for i, entry := range file.Definitions {
		c, err := cadence.Parse(entry.Cadence)
		if err != nil {
			return nil, fmt.Errorf("definition %d (%s): %w", i, entry.Id, err)
		}
		class := models.BalanceClass(entry.BalanceClass)
		if class == "" {
			class = models.GIVEABLE
		}
		def := models.AllocationDefinition{
			Id:           entry.Id,
			Name:         entry.Name,
			Amount:       entry.Amount,
			Cadence:      c,
			BalanceClass: class,
			ReceiverIds:  entry.Receivers,
			Active:       entry.Active == nil || *entry.Active,
		}
		if err := ValidateDefinition(&def); err != nil {
			return nil, fmt.Errorf("definition %d (%s): %w", i, entry.Id, err)
		}
		if _, dup := seen[def.Id]; dup {
			return nil, fmt.Errorf("%w: duplicate definition id %s", ErrInvalidAllocation, def.Id)
		}
		seen[def.Id] = struct{}{}
		defs = append(defs, def)
	}
	return defs, nil
}

// ValidateDefinition checks the fields a definition needs to be runnable.
func ValidateDefinition(def *models.AllocationDefinition) error {
	if def.Id == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidAllocation)
	}
	if !def.Cadence.Valid() {
		return fmt.Errorf("%w: %q", cadence.ErrUnknownCadence, def.Cadence)
	}
	return validateGrant(def.Amount, def.BalanceClass)
}

// SaveDefinition validates and stores a definition, stamping CreatedAt on first save.
func (e *Engine) SaveDefinition(ctx context.Context, def *models.AllocationDefinition) error {
	if err := ValidateDefinition(def); err != nil {
		return err
	}
	if def.CreatedAt.IsZero() {
		def.CreatedAt = e.now().UTC()
	}
	return e.store.PutAllocationDefinition(ctx, def)
}

// Definitions lists definitions, optionally only the active ones.
func (e *Engine) Definitions(ctx context.Context, activeOnly bool) ([]models.AllocationDefinition, error) {
	return e.store.ListAllocationDefinitions(ctx, activeOnly)
}

// Definition retrieves one definition.
func (e *Engine) Definition(ctx context.Context, id string) (*models.AllocationDefinition, error) {
	return e.store.GetAllocationDefinition(ctx, id)
}
