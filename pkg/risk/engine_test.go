package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"posmath.com/pkg/contract"
)

func baseInput() RiskInput {
	return RiskInput{
		Account: Account{
			Balance:          1000,
			PnlCumsumMax:     500,
			PnlCumsumLast:    500,
			LossAllowancePct: 0.01,
		},
		Params: contract.ExchangeParams{
			QtyStep: 0.001,
			CMult:   1.0,
		},
		MarkPrice: 35000,
	}
}

func TestComputeRisk_LongPosition(t *testing.T) {
	// 场景:
	// 1. 账户里有 1000 U
	// 2. 持有多仓 0.1 BTC，开仓价 30000
	// 3. 标记价 35000
	// 预期:
	// uPnL = 0.1 * (35000 - 30000) = 500
	// Equity = 1000 + 500 = 1500
	// 敞口 = 0.1 * 30000 / 1000 = 3.0
	in := baseInput()
	in.Positions = []Position{
		{Side: contract.SideLong, Size: 0.1, Price: 30000},
	}

	e := NewEngine()
	out, err := e.ComputeRisk(in)
	require.NoError(t, err)

	assert.InDelta(t, 500, out.Long.UnrealizedPnL, 1e-9)
	assert.InDelta(t, 1500, out.Equity, 1e-9)
	assert.InDelta(t, 3.0, out.Long.WalletExposure, 1e-9)
	assert.InDelta(t, 3000, out.Long.Notional, 1e-9)

	// 多头价格偏离: 1 - 35000/30000 = -1/6 (盈利方向为负)
	assert.InDelta(t, -1.0/6.0, out.Long.PriceDiff, 1e-12)

	// 无回撤: unstuck 额度 = 1000 * 1% = 10
	assert.InDelta(t, 10, out.UnstuckAllowance, 1e-9)

	// 空头这边没有仓位，指标全 0
	assert.Zero(t, out.Short)
}

func TestComputeRisk_BothSides(t *testing.T) {
	// 对冲双持: 多 0.1 @ 30000，空 0.05 @ 36000，标记价 35000
	in := baseInput()
	in.Positions = []Position{
		{Side: contract.SideLong, Size: 0.1, Price: 30000},
		{Side: contract.SideShort, Size: 0.05, Price: 36000},
	}

	out, err := NewEngine().ComputeRisk(in)
	require.NoError(t, err)

	// 空头 uPnL = 0.05 * (36000 - 35000) = 50
	assert.InDelta(t, 50, out.Short.UnrealizedPnL, 1e-9)
	assert.InDelta(t, 550, out.TotalUPnL, 1e-9)
	assert.InDelta(t, 1550, out.Equity, 1e-9)

	// 空头价格偏离: 35000/36000 - 1 < 0 (盈利方向)
	assert.Less(t, out.Short.PriceDiff, 0.0)
}

func TestComputeRisk_DrawdownShrinksAllowance(t *testing.T) {
	// 账户已从峰值回撤 0.5%: 额度剩一半
	in := baseInput()
	in.Account.Balance = 995
	in.Account.PnlCumsumLast = 495 // 峰值余额 = 995 + (500-495) = 1000

	out, err := NewEngine().ComputeRisk(in)
	require.NoError(t, err)
	assert.InDelta(t, 5, out.UnstuckAllowance, 1e-9)
}

func TestComputeRisk_InputValidation(t *testing.T) {
	e := NewEngine()

	t.Run("Sentinel Side Rejected", func(t *testing.T) {
		in := baseInput()
		in.Positions = []Position{{Side: contract.SideNoPos, Size: 0.1, Price: 30000}}
		_, err := e.ComputeRisk(in)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid position side")
	})

	t.Run("Duplicate Side Rejected", func(t *testing.T) {
		in := baseInput()
		in.Positions = []Position{
			{Side: contract.SideLong, Size: 0.1, Price: 30000},
			{Side: contract.SideLong, Size: 0.2, Price: 31000},
		}
		_, err := e.ComputeRisk(in)
		require.Error(t, err)
	})

	t.Run("Negative Size Rejected", func(t *testing.T) {
		in := baseInput()
		in.Positions = []Position{{Side: contract.SideShort, Size: -0.1, Price: 30000}}
		_, err := e.ComputeRisk(in)
		require.Error(t, err)
	})

	t.Run("Bad Mark Price Rejected", func(t *testing.T) {
		in := baseInput()
		in.MarkPrice = 0
		_, err := e.ComputeRisk(in)
		require.Error(t, err)
	})

	t.Run("Bad Params Rejected", func(t *testing.T) {
		in := baseInput()
		in.Params.QtyStep = 0
		_, err := e.ComputeRisk(in)
		require.Error(t, err)
	})
}
