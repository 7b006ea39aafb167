// Package ledger maintains the hash-chained, append-only audit record of
// financial events. The chain is tamper-evident, not tamper-proof: a single
// writer, no replication, no consensus.
package ledger

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/scholarpay/scholarpay-backend/internal/model"
	"github.com/scholarpay/scholarpay-backend/pkg/workerpool"
	"go.uber.org/zap"
)

const (
	genesisLiteral  = "genesis"
	defaultCurrency = "INR"
	anonymousUserID = "anonymous"

	verifyWorkers = 8
)

// Service appends blocks to the ledger and verifies chain integrity.
// Append is serialized by a mutex so concurrent callers cannot read the same
// tail and fork the chain.
type Service struct {
	store    BlockStore
	metrics  Metrics
	logger   *zap.Logger
	secret   []byte
	onAppend []func(model.Block)

	mu     sync.Mutex
	now    func() time.Time
	random io.Reader
}

// NewService builds a ledger Service. The secret keys identifier redaction
// and must be configured explicitly; there is no environment fallback.
func NewService(store BlockStore, metrics Metrics, secret string, logger *zap.Logger) (*Service, error) {
	if store == nil {
		return nil, errors.New("block store is required")
	}
	if metrics == nil {
		return nil, errors.New("ledger metrics is required")
	}
	if secret == "" {
		return nil, errors.New("ledger secret is required")
	}

	return &Service{
		store:   store,
		metrics: metrics,
		logger:  logger.Named("ledger"),
		secret:  []byte(secret),
		now:     time.Now,
		random:  rand.Reader,
	}, nil
}

// OnAppend registers a callback invoked after every successful append,
// genesis included. Callbacks run on the appending goroutine and must not block.
func (s *Service) OnAppend(fn func(model.Block)) {
	s.onAppend = append(s.onAppend, fn)
}

// Append redacts the event and chains it onto the current tail, synthesizing
// the genesis block first if the chain is empty. One durable write per call,
// no retries.
func (s *Service) Append(ctx context.Context, event Event) (block model.Block, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("append_block", err, started)
	}()

	s.mu.Lock()
	defer s.mu.Unlock()

	tail, err := s.store.LatestBlock(ctx)
	if err != nil {
		return model.Block{}, fmt.Errorf("read tail block: %w", err)
	}
	if tail == nil {
		genesis, genErr := s.buildGenesis()
		if genErr != nil {
			return model.Block{}, genErr
		}
		if err = s.store.InsertBlock(ctx, genesis); err != nil {
			return model.Block{}, fmt.Errorf("insert genesis block: %w", err)
		}
		s.logger.Info("genesis block created", zap.String("hash", genesis.Hash))
		s.publish(genesis)
		tail = &genesis
	}

	block, err = s.buildBlock(*tail, event)
	if err != nil {
		return model.Block{}, err
	}
	if err = s.store.InsertBlock(ctx, block); err != nil {
		return model.Block{}, fmt.Errorf("insert block %d: %w", block.Index, err)
	}

	s.logger.Info("block appended",
		zap.Uint64("index", block.Index),
		zap.String("hash", block.Hash),
	)
	s.publish(block)
	return block, nil
}

func (s *Service) buildGenesis() (model.Block, error) {
	redacted := hmacHex(s.secret, genesisLiteral)
	data := model.BlockData{
		HashedApplicationID: redacted,
		HashedTransactionID: redacted,
		HashedUserID:        redacted,
		Amount:              0,
		Currency:            defaultCurrency,
		Status:              genesisLiteral,
		GatewayPaymentID:    genesisLiteral,
		GatewayOrderID:      genesisLiteral,
	}
	return s.seal(model.Block{
		Index:    0,
		PrevHash: model.GenesisPrevHash,
		Data:     data,
	})
}

func (s *Service) buildBlock(tail model.Block, event Event) (model.Block, error) {
	userID := event.UserID
	if userID == "" {
		userID = anonymousUserID
	}
	currency := event.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	data := model.BlockData{
		HashedApplicationID: hmacHex(s.secret, event.ApplicationID),
		HashedTransactionID: hmacHex(s.secret, event.TransactionID),
		HashedUserID:        hmacHex(s.secret, userID),
		Amount:              event.Amount,
		Currency:            currency,
		Status:              event.Status,
		GatewayPaymentID:    event.GatewayPaymentID,
		GatewayOrderID:      event.GatewayOrderID,
	}
	return s.seal(model.Block{
		Index:    tail.Index + 1,
		PrevHash: tail.Hash,
		Data:     data,
	})
}

// seal stamps the timestamp and computes dataHash and hash for a block.
func (s *Service) seal(block model.Block) (model.Block, error) {
	block.Timestamp = s.now().UTC().Truncate(time.Millisecond)
	block.Nonce = 0

	dh, err := dataHash(block.Data)
	if err != nil {
		return model.Block{}, err
	}
	block.DataHash = dh
	block.Hash = blockHash(block.Index, block.Timestamp, block.PrevHash, block.DataHash, block.Nonce)
	return block, nil
}

func (s *Service) publish(block model.Block) {
	for _, fn := range s.onAppend {
		fn(block)
	}
}

// Verify reads the whole chain and checks every invariant: genesis shape,
// prevHash linkage, sequential indexes, and recomputed block and data hashes.
// Invariant violations come back in the Report; only store failures are errors.
func (s *Service) Verify(ctx context.Context) (report Report, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("verify_chain", err, started)
	}()

	blocks, err := s.store.BlocksAscending(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("read chain: %w", err)
	}
	if len(blocks) == 0 {
		return Report{Valid: true, FirstBrokenIndex: -1}, nil
	}

	var (
		brokenMu sync.Mutex
		broken   = int64(-1)
	)
	mark := func(index uint64) {
		brokenMu.Lock()
		defer brokenMu.Unlock()
		if broken == -1 || int64(index) < broken {
			broken = int64(index)
		}
	}

	if blocks[0].Index != 0 || blocks[0].PrevHash != model.GenesisPrevHash {
		mark(blocks[0].Index)
	}

	// Hash recomputation is independent per block; fan it out. Link checks
	// need adjacent pairs and stay sequential.
	err = workerpool.Map(ctx, verifyWorkers, blocks, func(_ context.Context, _ int, b model.Block) error {
		dh, hashErr := dataHash(b.Data)
		if hashErr != nil || dh != b.DataHash {
			mark(b.Index)
			return nil
		}
		if blockHash(b.Index, b.Timestamp, b.PrevHash, b.DataHash, b.Nonce) != b.Hash {
			mark(b.Index)
		}
		return nil
	})
	if err != nil {
		return Report{}, err
	}

	for i := 1; i < len(blocks); i++ {
		current, previous := blocks[i], blocks[i-1]
		if current.PrevHash != previous.Hash || current.Index != previous.Index+1 {
			mark(current.Index)
		}
	}

	report = Report{
		Valid:            broken == -1,
		FirstBrokenIndex: broken,
		Blocks:           uint64(len(blocks)),
	}
	if !report.Valid {
		s.logger.Warn("chain verification failed", zap.Int64("firstBrokenIndex", broken))
	}
	return report, nil
}

// MintTransactionID derives a one-way identifier for a transaction from the
// application and payment ids plus a timestamp and random nonce, so the
// result cannot be linked back to its inputs without the secret.
func (s *Service) MintTransactionID(applicationID, gatewayPaymentID string) (string, error) {
	nonce := make([]byte, 16)
	if _, err := io.ReadFull(s.random, nonce); err != nil {
		return "", fmt.Errorf("read random nonce: %w", err)
	}
	input := fmt.Sprintf("%s_%s_%d_%s",
		applicationID,
		gatewayPaymentID,
		s.now().UnixMilli(),
		hex.EncodeToString(nonce),
	)
	return hmacHex(s.secret, input), nil
}

// Stats reports chain size, tail position and current validity.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	total, err := s.store.CountBlocks(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("count blocks: %w", err)
	}
	tail, err := s.store.LatestBlock(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("read tail block: %w", err)
	}
	report, err := s.Verify(ctx)
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{
		TotalBlocks:      total,
		LatestBlockIndex: -1,
		Valid:            report.Valid,
		LastValidated:    s.now().UTC(),
	}
	if tail != nil {
		stats.LatestBlockIndex = int64(tail.Index)
		stats.LatestBlockHash = tail.Hash
	}
	return stats, nil
}
