package claims

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/chris/kudos-ledger/pkg/models"
	"github.com/chris/kudos-ledger/pkg/storage"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// ErrInvalidFilter is returned for an unknown status or sort order.
var ErrInvalidFilter = errors.New("invalid claim filter")

// Order is the createdAt sort direction of a claim listing.
type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

// Filter selects a page of claims. Zero values select every sender, every
// status, the first page, DefaultPageSize and newest first.
type Filter struct {
	UserID string
	Status models.ClaimStatus
	Page   int
	Limit  int
	Order  Order
}

// Participant is a user with the display data the directory could resolve.
// Name and Picture are empty when the lookup failed.
type Participant struct {
	UserId  string
	Name    string
	Picture string
}

// ReceiverView is one receiver of a listed claim.
type ReceiverView struct {
	Participant
	Amount int64
}

// ClaimView is a claim joined with display data.
type ClaimView struct {
	Claim     models.Claim
	Sender    Participant
	Receivers []ReceiverView
}

// PagedClaims is one page of a claim listing.
type PagedClaims struct {
	Claims []ClaimView
	Page   int
	Limit  int
	Total  int
}

// Filter returns one page of claims with sender and receiver display data.
func (w *Workflow) Filter(ctx context.Context, f Filter) (*PagedClaims, error) {
	if f.Status != "" && !f.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidFilter, f.Status)
	}
	switch f.Order {
	case "":
		f.Order = OrderDesc
	case OrderAsc, OrderDesc:
	default:
		return nil, fmt.Errorf("%w: unknown order %q", ErrInvalidFilter, f.Order)
	}
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = DefaultPageSize
	}
	if f.Limit > MaxPageSize {
		f.Limit = MaxPageSize
	}

	all, err := w.store.ListClaims(ctx, storage.ClaimQuery{SenderID: f.UserID, Status: f.Status})
	if err != nil {
		return nil, fmt.Errorf("failed to list claims: %w", err)
	}

	sort.Slice(all, func(i, j int) bool {
		a, b := all[i], all[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			if f.Order == OrderAsc {
				return a.CreatedAt.Before(b.CreatedAt)
			}
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.Id < b.Id
	})

	page := &PagedClaims{Page: f.Page, Limit: f.Limit, Total: len(all), Claims: []ClaimView{}}
	// Compare page counts before multiplying so a huge page cannot overflow start.
	if f.Page-1 >= (len(all)+f.Limit-1)/f.Limit {
		return page, nil
	}
	start := (f.Page - 1) * f.Limit
	end := start + f.Limit
	if end > len(all) {
		end = len(all)
	}

	lookup := w.newLookup()
	for _, c := range all[start:end] {
		view := ClaimView{Claim: c, Sender: lookup.participant(ctx, c.SenderId)}
		for _, r := range c.Receivers {
			view.Receivers = append(view.Receivers, ReceiverView{
				Participant: lookup.participant(ctx, r.ReceiverId),
				Amount:      r.Amount,
			})
		}
		page.Claims = append(page.Claims, view)
	}
	return page, nil
}

// lookup caches directory results for the duration of one listing.
type lookup struct {
	w     *Workflow
	cache map[string]Participant
}

func (w *Workflow) newLookup() *lookup {
	return &lookup{w: w, cache: make(map[string]Participant)}
}

func (l *lookup) participant(ctx context.Context, userID string) Participant {
	if p, ok := l.cache[userID]; ok {
		return p
	}
	p := Participant{UserId: userID}
	profile, err := l.w.store.FindUser(ctx, userID)
	switch {
	case err != nil:
		l.w.logger.Warn("failed to resolve user display data",
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
	case profile != nil:
		p.Name = profile.Name
		p.Picture = profile.Picture
	}
	l.cache[userID] = p
	return p
}
