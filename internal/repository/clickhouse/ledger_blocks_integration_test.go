package clickhouse

import (
	"time"

	"github.com/scholarpay/scholarpay-backend/internal/model"
)

func integrationBlock(index uint64, prevHash string, ts time.Time) model.Block {
	return model.Block{
		Index:     index,
		Timestamp: ts,
		PrevHash:  prevHash,
		DataHash:  "data_" + prevHash,
		Hash:      "hash_" + prevHash,
		Nonce:     0,
		Data: model.BlockData{
			HashedApplicationID: "ha",
			HashedTransactionID: "ht",
			HashedUserID:        "hu",
			Amount:              5000000,
			Currency:            "INR",
			Status:              "paid",
			GatewayPaymentID:    "pay_1",
			GatewayOrderID:      "order_1",
		},
	}
}

func (s *RepositorySuite) TestLedgerBlocksRoundTrip() {
	now := time.Now().UTC().Truncate(time.Millisecond)

	genesis := integrationBlock(0, model.GenesisPrevHash, now)
	second := integrationBlock(1, genesis.Hash, now.Add(time.Second))

	s.Require().NoError(s.repo.InsertBlock(s.testCtx, genesis))
	s.Require().NoError(s.repo.InsertBlock(s.testCtx, second))

	count, err := s.repo.CountBlocks(s.testCtx)
	s.Require().NoError(err)
	s.Equal(uint64(2), count)

	latest, err := s.repo.LatestBlock(s.testCtx)
	s.Require().NoError(err)
	s.Require().NotNil(latest)
	s.Equal(uint64(1), latest.Index)
	s.Equal(genesis.Hash, latest.PrevHash)
	s.Equal(second.Timestamp, latest.Timestamp.UTC())

	blocks, err := s.repo.BlocksAscending(s.testCtx)
	s.Require().NoError(err)
	s.Require().Len(blocks, 2)
	s.Equal(uint64(0), blocks[0].Index)
	s.Equal(model.GenesisPrevHash, blocks[0].PrevHash)
	s.Equal(genesis.Data, blocks[0].Data)
}

func (s *RepositorySuite) TestLedgerBlocksEmpty() {
	latest, err := s.repo.LatestBlock(s.testCtx)
	s.Require().NoError(err)
	s.Nil(latest)

	count, err := s.repo.CountBlocks(s.testCtx)
	s.Require().NoError(err)
	s.Zero(count)

	blocks, err := s.repo.BlocksAscending(s.testCtx)
	s.Require().NoError(err)
	s.Empty(blocks)
}
