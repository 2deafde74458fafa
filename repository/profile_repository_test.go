package repository

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fund-selector/domain"
)

func sampleProfile(id string) domain.Profile {
	return domain.Profile{
		ID: id,
		Inputs: domain.FinancialInputs{
			Age: 30, MonthlyIncome: 100000, MonthlyExpenses: 40000,
			HasDebtService: true, DebtServiceAmount: 10000, StatedRisk: "MEDIUM",
		},
		Horizon:           domain.HorizonLong,
		HorizonLabel:      domain.HorizonLong.Label(),
		InvestableSurplus: 50000,
		DebtServiceRatio:  0.1,
		SavingsRate:       0.5,
		FinalRisk:         domain.RiskHigh,
		Allocation: domain.AllocationTemplate{
			Tier:       domain.RiskHigh,
			AssetSplit: []domain.AssetShare{{AssetClass: "Debt", Percent: 10}, {AssetClass: "Equity", Percent: 90}},
		},
		Alerts:    []domain.Alert{},
		CreatedAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestProfileRepositoryMemory(t *testing.T) {
	repo := NewProfileRepositoryMemory()
	ctx := context.Background()

	_, err := repo.Get(ctx, "p1")
	assert.ErrorIs(t, err, ErrProfileNotFound)

	require.NoError(t, repo.Save(ctx, sampleProfile("p1")))
	require.NoError(t, repo.Save(ctx, sampleProfile("p2")))
	assert.Equal(t, 2, repo.Len())

	got, err := repo.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, domain.RiskHigh, got.FinalRisk)
}

type fakeRow struct {
	payload []byte
	err     error
}

func (r fakeRow) Scan(dest ...interface{}) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*[]byte)) = r.payload
	return nil
}

type fakeQuerier struct {
	execSQL  []string
	execArgs [][]interface{}
	execErr  error
	rows     map[string][]byte
}

func (f *fakeQuerier) Exec(_ context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	f.execSQL = append(f.execSQL, sql)
	f.execArgs = append(f.execArgs, args)
	if f.execErr != nil {
		return nil, f.execErr
	}
	if len(args) == 5 {
		f.rows[args[0].(string)] = args[4].([]byte)
	}
	return pgconn.CommandTag("INSERT 0 1"), nil
}

func (f *fakeQuerier) QueryRow(_ context.Context, _ string, args ...interface{}) pgx.Row {
	payload, ok := f.rows[args[0].(string)]
	if !ok {
		return fakeRow{err: pgx.ErrNoRows}
	}
	return fakeRow{payload: payload}
}

func TestProfileRepositoryPostgres_SaveAndGet(t *testing.T) {
	db := &fakeQuerier{rows: map[string][]byte{}}
	repo := newProfileRepositoryPostgres(db)
	ctx := context.Background()

	require.NoError(t, repo.EnsureSchema(ctx))
	assert.Contains(t, db.execSQL[0], "CREATE TABLE IF NOT EXISTS profiles")

	p := sampleProfile("p1")
	require.NoError(t, repo.Save(ctx, p))

	args := db.execArgs[1]
	assert.Equal(t, "p1", args[0])
	assert.Equal(t, "LONG", args[2])
	assert.Equal(t, "HIGH", args[3])

	var stored map[string]interface{}
	require.NoError(t, json.Unmarshal(args[4].([]byte), &stored))
	assert.Equal(t, "HIGH", stored["final_risk"])

	got, err := repo.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)
	assert.Equal(t, p.FinalRisk, got.FinalRisk)
	assert.Equal(t, p.Horizon, got.Horizon)
	assert.True(t, p.CreatedAt.Equal(got.CreatedAt))
}

func TestProfileRepositoryPostgres_NotFound(t *testing.T) {
	repo := newProfileRepositoryPostgres(&fakeQuerier{rows: map[string][]byte{}})
	_, err := repo.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestProfileRepositoryPostgres_ExecError(t *testing.T) {
	repo := newProfileRepositoryPostgres(&fakeQuerier{rows: map[string][]byte{}, execErr: errors.New("db down")})
	err := repo.Save(context.Background(), sampleProfile("p1"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}
