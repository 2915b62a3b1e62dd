package risk

// CalcLiquidationPrice 计算全仓强平价格 (带合约乘数)
//
// 强平条件: Equity <= 维持保证金需求 (MMR)
//
//	Equity = Balance + qty * cMult * (P - EntryPrice)
//	MMR    = |qty| * cMult * P * maintenanceRate
//
// 设 P 为强平价格，解方程:
//
// 【多仓 (qty > 0)】
//
//	P = (qty*cMult*EntryPrice - Balance) / (qty*cMult*(1 - maintenanceRate))
//
// 【空仓 (qty < 0)】
//
//	P = (Balance + |qty|*cMult*EntryPrice) / (|qty|*cMult*(1 + maintenanceRate))
//
// cMult = 1 时退化成标准线性合约公式。
//
// 返回 0 的情况: 无仓位、maintenanceRate >= 1 (分母非正)、算出负价。
func CalcLiquidationPrice(qty, entryPrice, balance, maintenanceRate, cMult float64) float64 {
	if qty == 0 {
		return 0
	}
	if maintenanceRate >= 1 {
		return 0
	}

	var liqPrice float64

	if qty > 0 {
		// 多仓: 余额越多分子越小，强平价越低越安全
		numerator := qty*cMult*entryPrice - balance
		denominator := qty * cMult * (1 - maintenanceRate)
		liqPrice = numerator / denominator
	} else {
		// 空仓: 余额越多强平价越高越安全
		absQty := -qty
		numerator := balance + absQty*cMult*entryPrice
		denominator := absQty * cMult * (1 + maintenanceRate)
		liqPrice = numerator / denominator
	}

	if liqPrice < 0 {
		return 0
	}
	return liqPrice
}
