package risk

import (
	"math"
	"testing"
)

func TestCalcLiquidationPrice(t *testing.T) {
	// 测试多仓
	t.Run("Long Position", func(t *testing.T) {
		liqPrice := CalcLiquidationPrice(1.0, 50000, 1000, 0.005, 1.0)

		// 预期 ≈ (50000 - 1000) / 0.995 ≈ 49246
		expected := 49246.23
		if math.Abs(liqPrice-expected) > 1 {
			t.Errorf("Expected ~%.2f, got %.2f", expected, liqPrice)
		}
	})

	// 测试空仓
	t.Run("Short Position", func(t *testing.T) {
		liqPrice := CalcLiquidationPrice(-1.0, 50000, 1000, 0.005, 1.0)

		// 预期 ≈ (1000 + 50000) / 1.005 ≈ 50746
		expected := 50746.27
		if math.Abs(liqPrice-expected) > 1 {
			t.Errorf("Expected ~%.2f, got %.2f", expected, liqPrice)
		}
	})

	// 合约乘数不变性: qty=100, cMult=0.01 等价于 qty=1, cMult=1
	t.Run("Contract Multiplier Invariance", func(t *testing.T) {
		base := CalcLiquidationPrice(1.0, 50000, 1000, 0.005, 1.0)
		scaled := CalcLiquidationPrice(100.0, 50000, 1000, 0.005, 0.01)
		if math.Abs(base-scaled) > 1e-6 {
			t.Errorf("cMult scaling broke: base=%v scaled=%v", base, scaled)
		}
	})

	// 测试边界: 无仓位
	t.Run("Zero Position", func(t *testing.T) {
		if liqPrice := CalcLiquidationPrice(0, 50000, 1000, 0.005, 1.0); liqPrice != 0 {
			t.Errorf("Expected 0, got %.2f", liqPrice)
		}
	})

	// 测试边界: 维持保证金率 >= 100%
	t.Run("Degenerate MMR", func(t *testing.T) {
		if liqPrice := CalcLiquidationPrice(1.0, 50000, 1000, 1.0, 1.0); liqPrice != 0 {
			t.Errorf("Expected 0, got %.2f", liqPrice)
		}
	})
}
