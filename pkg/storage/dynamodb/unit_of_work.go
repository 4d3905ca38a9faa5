package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/kudos-ledger/pkg/models"
	"github.com/chris/kudos-ledger/pkg/storage"
	"github.com/google/uuid"
)

// maxTransactItems is the DynamoDB limit on actions in one TransactWriteItems call.
const maxTransactItems = 100

type itemKind int

const (
	walletItem itemKind = iota
	transactionItem
	claimPutItem
	claimStatusItem
	allocationItem
)

// stagedItem is one write of a unit together with what it touches, so that a
// cancellation reason can be mapped back to a domain error.
type stagedItem struct {
	kind  itemKind
	ref   string
	write types.TransactWriteItem
}

// walletDelta accumulates every balance change made to one wallet in a unit.
// DynamoDB rejects two actions on the same item, so they are merged into one update.
type walletDelta struct {
	snapshot models.Wallet
	earned   int64
	giveable int64
}

func (d *walletDelta) add(class models.BalanceClass, amount int64) {
	if class == models.EARNED {
		d.earned += amount
	} else {
		d.giveable += amount
	}
}

func (d *walletDelta) delta(class models.BalanceClass) int64 {
	if class == models.EARNED {
		return d.earned
	}
	return d.giveable
}

// projected is the balance the unit will commit, computed from the snapshot read
// at the start of the unit. A concurrent writer can change the committed value;
// the update's condition only guarantees it stays within bounds.
func (d *walletDelta) projected(class models.BalanceClass) int64 {
	return d.snapshot.Balance(class) + d.delta(class)
}

// unit buffers the writes of one unit of work and commits them with TransactWriteItems.
type unit struct {
	store       *Store
	now         time.Time
	wallets     map[string]*walletDelta
	walletOrder []string
	items       []stagedItem
	claims      map[string]*models.Claim
	claimItems  map[string]int
}

// Run executes fn and commits its staged writes in a single DynamoDB transaction.
// Balance and claim-status checks are enforced by condition expressions, so a
// concurrent writer that invalidates a read made during fn cancels the commit.
func (s *Store) Run(ctx context.Context, fn func(tx storage.Tx) error) error {
	u := &unit{
		store:      s,
		now:        s.now(),
		wallets:    make(map[string]*walletDelta),
		claims:     make(map[string]*models.Claim),
		claimItems: make(map[string]int),
	}
	if err := fn(u); err != nil {
		return err
	}
	return u.commit(ctx)
}

func (u *unit) wallet(ctx context.Context, userID string) (*walletDelta, error) {
	if d, ok := u.wallets[userID]; ok {
		return d, nil
	}
	w, err := u.store.getWallet(ctx, userID, true)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("user %s: %w", userID, storage.ErrWalletNotFound)
		}
		return nil, err
	}
	d := &walletDelta{snapshot: *w}
	u.wallets[userID] = d
	u.walletOrder = append(u.walletOrder, userID)
	return d, nil
}

func (u *unit) IncrementWallet(ctx context.Context, userID string, class models.BalanceClass, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, storage.ErrInvalidAmount
	}
	d, err := u.wallet(ctx, userID)
	if err != nil {
		return 0, err
	}
	if d.projected(class) > math.MaxInt64-amount {
		return 0, fmt.Errorf("user %s %s balance: %w", userID, class, storage.ErrBalanceOverflow)
	}
	d.add(class, amount)
	return d.projected(class), nil
}

func (u *unit) DecrementWallet(ctx context.Context, userID string, class models.BalanceClass, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, storage.ErrInvalidAmount
	}
	d, err := u.wallet(ctx, userID)
	if err != nil {
		return 0, err
	}
	if available := d.projected(class); available < amount {
		return 0, &storage.InsufficientBalanceError{UserID: userID, Class: class, Available: available, Requested: amount}
	}
	d.add(class, -amount)
	return d.projected(class), nil
}

func (u *unit) AppendTransaction(ctx context.Context, tx *models.Transaction) error {
	txAV, err := attributevalue.MarshalMap(tx)
	if err != nil {
		return fmt.Errorf("failed to marshal transaction: %w", err)
	}
	u.items = append(u.items, stagedItem{
		kind: transactionItem,
		ref:  tx.Id,
		write: types.TransactWriteItem{
			Put: &types.Put{
				TableName:           aws.String(u.store.TransactionsTableName),
				Item:                txAV,
				ConditionExpression: aws.String("attribute_not_exists(id)"),
			},
		},
	})
	return nil
}

func (u *unit) CreateClaim(ctx context.Context, claim *models.Claim) error {
	if _, ok := u.claims[claim.Id]; ok {
		return fmt.Errorf("claim %s already staged", claim.Id)
	}
	put, err := u.claimPut(claim)
	if err != nil {
		return err
	}
	u.claimItems[claim.Id] = len(u.items)
	u.items = append(u.items, stagedItem{kind: claimPutItem, ref: claim.Id, write: put})

	staged := *claim
	staged.Receivers = append([]models.ClaimReceiver(nil), claim.Receivers...)
	u.claims[claim.Id] = &staged
	return nil
}

func (u *unit) claimPut(claim *models.Claim) (types.TransactWriteItem, error) {
	claimAV, err := attributevalue.MarshalMap(claim)
	if err != nil {
		return types.TransactWriteItem{}, fmt.Errorf("failed to marshal claim: %w", err)
	}
	return types.TransactWriteItem{
		Put: &types.Put{
			TableName:           aws.String(u.store.ClaimsTableName),
			Item:                claimAV,
			ConditionExpression: aws.String("attribute_not_exists(id)"),
		},
	}, nil
}

func (u *unit) GetClaim(ctx context.Context, claimID string) (*models.Claim, error) {
	c, ok := u.claims[claimID]
	if !ok {
		var err error
		c, err = u.store.getClaim(ctx, claimID, true)
		if err != nil {
			return nil, err
		}
		u.claims[claimID] = c
	}
	out := *c
	out.Receivers = append([]models.ClaimReceiver(nil), c.Receivers...)
	return &out, nil
}

func (u *unit) TransitionClaim(ctx context.Context, claimID string, from, to models.ClaimStatus) error {
	c, err := u.GetClaim(ctx, claimID)
	if err != nil {
		return err
	}
	if c.Status != from {
		return &storage.InvalidClaimStateError{ClaimID: claimID, Status: c.Status}
	}
	c.Status = to
	c.UpdatedAt = u.now
	u.claims[claimID] = c

	idx, staged := u.claimItems[claimID]
	if staged && u.items[idx].kind == claimPutItem {
		put, err := u.claimPut(c)
		if err != nil {
			return err
		}
		u.items[idx].write = put
		return nil
	}

	nowAV, err := attributevalue.Marshal(u.now)
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp: %w", err)
	}
	update := stagedItem{
		kind: claimStatusItem,
		ref:  claimID,
		write: types.TransactWriteItem{
			Update: &types.Update{
				TableName:           aws.String(u.store.ClaimsTableName),
				Key:                 map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: claimID}},
				UpdateExpression:    aws.String("SET #status = :to, updated_at = :now"),
				ConditionExpression: aws.String("#status = :from"),
				ExpressionAttributeNames: map[string]string{
					"#status": "status",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":to":   &types.AttributeValueMemberS{Value: string(to)},
					":from": &types.AttributeValueMemberS{Value: string(from)},
					":now":  nowAV,
				},
			},
		},
	}
	if staged {
		// A second transition in the same unit keeps the condition of the first.
		update.write.Update.ExpressionAttributeValues[":from"] = u.items[idx].write.Update.ExpressionAttributeValues[":from"]
		u.items[idx] = update
		return nil
	}
	u.claimItems[claimID] = len(u.items)
	u.items = append(u.items, update)
	return nil
}

func (u *unit) PutAllocationRecord(ctx context.Context, record *models.AllocationRecord) error {
	recordAV, err := attributevalue.MarshalMap(record)
	if err != nil {
		return fmt.Errorf("failed to marshal allocation record: %w", err)
	}
	u.items = append(u.items, stagedItem{
		kind: allocationItem,
		ref:  record.Id,
		write: types.TransactWriteItem{
			Put: &types.Put{
				TableName:           aws.String(u.store.AllocationRecordsTableName),
				Item:                recordAV,
				ConditionExpression: aws.String("attribute_not_exists(id)"),
			},
		},
	})
	return nil
}

// walletUpdate builds the single conditional update applying a wallet's net delta.
func (u *unit) walletUpdate(userID string, d *walletDelta) (types.TransactWriteItem, error) {
	nowAV, err := attributevalue.Marshal(u.now)
	if err != nil {
		return types.TransactWriteItem{}, fmt.Errorf("failed to marshal timestamp: %w", err)
	}
	condition := "attribute_exists(user_id)"
	values := map[string]types.AttributeValue{
		":earned":   &types.AttributeValueMemberN{Value: strconv.FormatInt(d.earned, 10)},
		":giveable": &types.AttributeValueMemberN{Value: strconv.FormatInt(d.giveable, 10)},
		":inc":      &types.AttributeValueMemberN{Value: "1"},
		":now":      nowAV,
	}
	switch {
	case d.earned < 0:
		condition += " AND earned_balance >= :min_earned"
		values[":min_earned"] = &types.AttributeValueMemberN{Value: strconv.FormatInt(-d.earned, 10)}
	case d.earned > 0:
		condition += " AND earned_balance <= :max_earned"
		values[":max_earned"] = &types.AttributeValueMemberN{Value: strconv.FormatInt(math.MaxInt64-d.earned, 10)}
	}
	switch {
	case d.giveable < 0:
		condition += " AND giveable_balance >= :min_giveable"
		values[":min_giveable"] = &types.AttributeValueMemberN{Value: strconv.FormatInt(-d.giveable, 10)}
	case d.giveable > 0:
		condition += " AND giveable_balance <= :max_giveable"
		values[":max_giveable"] = &types.AttributeValueMemberN{Value: strconv.FormatInt(math.MaxInt64-d.giveable, 10)}
	}
	return types.TransactWriteItem{
		Update: &types.Update{
			TableName: aws.String(u.store.WalletsTableName),
			Key:       map[string]types.AttributeValue{"user_id": &types.AttributeValueMemberS{Value: userID}},
			UpdateExpression: aws.String(
				"SET earned_balance = earned_balance + :earned, giveable_balance = giveable_balance + :giveable, " +
					"updated_at = :now, version = version + :inc"),
			ConditionExpression:                 aws.String(condition),
			ExpressionAttributeValues:           values,
			ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
		},
	}, nil
}

func (u *unit) commit(ctx context.Context) error {
	var staged []stagedItem
	for _, userID := range u.walletOrder {
		d := u.wallets[userID]
		if d.earned == 0 && d.giveable == 0 {
			continue
		}
		write, err := u.walletUpdate(userID, d)
		if err != nil {
			return err
		}
		staged = append(staged, stagedItem{kind: walletItem, ref: userID, write: write})
	}
	staged = append(staged, u.items...)

	if len(staged) == 0 {
		return nil
	}
	if len(staged) > maxTransactItems {
		return fmt.Errorf("%d writes: %w", len(staged), storage.ErrUnitOfWorkTooLarge)
	}

	writes := make([]types.TransactWriteItem, len(staged))
	for i, item := range staged {
		writes[i] = item.write
	}
	input := &dynamodb.TransactWriteItemsInput{
		TransactItems:      writes,
		ClientRequestToken: aws.String(uuid.New().String()),
	}

	_, err := u.store.Client.TransactWriteItems(ctx, input)
	if err != nil {
		var canceled *types.TransactionCanceledException
		if errors.As(err, &canceled) {
			return u.cancellationError(canceled, staged)
		}
		return fmt.Errorf("failed to commit unit of work: %w", err)
	}
	return nil
}

// walletConflict explains a failed wallet condition from the item DynamoDB returned.
// Without an item it falls back to the direction of the delta.
func (u *unit) walletConflict(userID string, item map[string]types.AttributeValue) error {
	d := u.wallets[userID]
	if item != nil {
		var current models.Wallet
		if err := attributevalue.UnmarshalMap(item, &current); err == nil {
			for _, class := range []models.BalanceClass{models.EARNED, models.GIVEABLE} {
				delta, balance := d.delta(class), current.Balance(class)
				if delta < 0 && balance < -delta {
					return &storage.InsufficientBalanceError{UserID: userID, Class: class, Available: balance, Requested: -delta}
				}
				if delta > 0 && balance > math.MaxInt64-delta {
					return fmt.Errorf("user %s %s balance: %w", userID, class, storage.ErrBalanceOverflow)
				}
			}
		}
	}
	if d.earned < 0 || d.giveable < 0 {
		return fmt.Errorf("user %s: %w", userID, storage.ErrInsufficientBalance)
	}
	return fmt.Errorf("user %s: %w", userID, storage.ErrWalletNotFound)
}

// cancellationError maps the first failed condition of a cancelled transaction to a domain error.
func (u *unit) cancellationError(canceled *types.TransactionCanceledException, staged []stagedItem) error {
	for i, reason := range canceled.CancellationReasons {
		if i >= len(staged) || reason.Code == nil || *reason.Code != "ConditionalCheckFailed" {
			continue
		}
		item := staged[i]
		switch item.kind {
		case walletItem:
			return u.walletConflict(item.ref, reason.Item)
		case claimStatusItem:
			return fmt.Errorf("claim %s: %w", item.ref, storage.ErrInvalidClaimState)
		case allocationItem:
			return fmt.Errorf("allocation record %s: %w", item.ref, storage.ErrAllocationConflict)
		case claimPutItem:
			return fmt.Errorf("claim %s already exists", item.ref)
		case transactionItem:
			return fmt.Errorf("transaction %s already exists", item.ref)
		}
	}
	return fmt.Errorf("unit of work cancelled: %w", canceled)
}
