package main

import (
	"log"
	"math/rand"

	"posmath.com/pkg/contract"
	"posmath.com/pkg/posmath"
	"posmath.com/pkg/risk"
)

// =============================================================================
// 模拟器: 扮演"外部调用方" (策略/回测引擎) 的角色
//
// 本库不持有任何状态，所以余额、持仓、累计盈亏序列都由这里维护。
// 价格走随机游走，策略是最笨的网格: 每跌 1% 加仓，每涨 2% 平掉一半。
// 目的不是赚钱，是把库里的每条公式都跑一遍并打出来看。
// =============================================================================

const (
	steps           = 500
	startBalance    = 10000.0
	startPrice      = 30000.0
	allowancePct    = 0.01 // unstuck 允许 1% 峰值回撤
	maintMarginRate = 0.005
	fillQty         = 0.01
	addTriggerPct   = 0.01
	takeTriggerPct  = 0.02
)

// Trader 调用方侧的账户簿记
type Trader struct {
	balance       float64
	psize         float64 // 多仓数量
	pprice        float64 // 多仓均价
	pnlCumsum     float64
	pnlCumsumMax  float64
	lastFillPrice float64
}

func main() {
	rng := rand.New(rand.NewSource(42))

	params := contract.ExchangeParams{
		QtyStep:   0.001,
		PriceStep: 0.5,
		MinQty:    0.001,
		MinCost:   5,
		CMult:     1.0,
	}
	if err := contract.ValidateParams(&params); err != nil {
		log.Fatalf("bad params: %v", err)
	}

	engine := risk.NewEngine()
	trader := &Trader{balance: startBalance, lastFillPrice: startPrice}
	price := startPrice

	log.Printf("[Sim] start: balance=%.2f price=%.2f steps=%d", trader.balance, price, steps)

	for i := 0; i < steps; i++ {
		// 1. 价格随机游走 (±0.5% 每步)，量化到价格步长
		price = posmath.Round(price*(1+(rng.Float64()-0.5)*0.01), params.PriceStep)

		// 2. 最笨的网格策略产生成交
		trader.maybeTrade(price, &params)

		// 3. 风控评估 (每 50 步打一次)
		if (i+1)%50 == 0 {
			trader.report(engine, price, &params, i+1)
		}
	}

	log.Printf("[Sim] done: balance=%.2f psize=%.4f pprice=%.2f pnlCumsum=%.2f",
		trader.balance, trader.psize, trader.pprice, trader.pnlCumsum)
}

// maybeTrade 跌了加仓、涨了减仓，成交后把 fill 并入持仓
func (tr *Trader) maybeTrade(price float64, params *contract.ExchangeParams) {
	var qty float64

	switch {
	case tr.psize == 0:
		// 空仓: 直接开底仓
		qty = fillQty
	case price <= tr.lastFillPrice*(1-addTriggerPct):
		// 下单前先看加仓后的敞口，超过 10 倍就不加了
		we := posmath.CalcWalletExposureIfFilled(tr.balance, tr.psize, tr.pprice, fillQty, price, params)
		if we < 10 {
			qty = fillQty
		}
	case price >= tr.lastFillPrice*(1+takeTriggerPct):
		// 平掉一半，量化到步长
		qty = -posmath.Round(tr.psize/2, params.QtyStep)
	}

	if qty == 0 {
		return
	}

	// 减仓产生已实现盈亏，记入余额和累计盈亏序列
	if qty < 0 {
		pnl := posmath.CalcPnLLong(tr.pprice, price, qty, params.CMult)
		tr.balance += pnl
		tr.pnlCumsum += pnl
		if tr.pnlCumsum > tr.pnlCumsumMax {
			tr.pnlCumsumMax = tr.pnlCumsum
		}
	}

	tr.psize, tr.pprice = posmath.CalcNewPosition(tr.psize, tr.pprice, qty, price, params.QtyStep)
	tr.lastFillPrice = price
}

// report 跑一遍风控引擎并打印
func (tr *Trader) report(engine *risk.Engine, price float64, params *contract.ExchangeParams, step int) {
	in := risk.RiskInput{
		Account: risk.Account{
			Balance:          tr.balance,
			PnlCumsumMax:     tr.pnlCumsumMax,
			PnlCumsumLast:    tr.pnlCumsum,
			LossAllowancePct: allowancePct,
		},
		Params:    *params,
		MarkPrice: price,
	}
	if tr.psize > 0 {
		in.Positions = []risk.Position{
			{Side: contract.SideLong, Size: tr.psize, Price: tr.pprice},
		}
	}

	out, err := engine.ComputeRisk(in)
	if err != nil {
		log.Fatalf("[Risk] compute failed: %v", err)
	}

	liq := risk.CalcLiquidationPrice(tr.psize, tr.pprice, tr.balance, maintMarginRate, params.CMult)

	log.Printf("[Step %3d] price=%.2f psize=%.3f pprice=%.2f uPnL=%.2f equity=%.2f we=%.3f liq=%.2f unstuck=%.2f",
		step, price, tr.psize, tr.pprice,
		out.Long.UnrealizedPnL, out.Equity, out.Long.WalletExposure, liq, out.UnstuckAllowance)
}
