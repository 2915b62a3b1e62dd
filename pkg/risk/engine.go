package risk

import (
	"errors"
	"fmt"

	"posmath.com/pkg/contract"
	"posmath.com/pkg/posmath"
)

// Engine 是风控引擎对象。
// 你可以把它理解成"一个计算器": 输入 RiskInput → 输出 RiskOutput。
// 无状态、无 I/O，可以随便并发调用。
type Engine struct{}

func NewEngine() *Engine { return &Engine{} }

// ComputeRisk 核心风控入口
//
// 流程: 校验 → 逐仓位计算单边指标 → 聚合账户级指标。
// 所有数值语义都委托给 pkg/posmath，这里只做编排。
func (e *Engine) ComputeRisk(in RiskInput) (RiskOutput, error) {
	// 1. 基础校验
	if err := validateInput(&in); err != nil {
		return RiskOutput{}, err
	}

	var out RiskOutput

	// 2. 遍历仓位 (每个方向最多一条，validateInput 已保证)
	for _, p := range in.Positions {
		m, err := e.computeSide(&in, &p)
		if err != nil {
			return RiskOutput{}, err
		}

		if p.Side == contract.SideLong {
			out.Long = m
		} else {
			out.Short = m
		}
		out.TotalUPnL += m.UnrealizedPnL
	}

	// 3. 账户级聚合
	out.Equity = in.Account.Balance + out.TotalUPnL
	out.UnstuckAllowance = posmath.CalcAutoUnstuckAllowance(
		in.Account.Balance,
		in.Account.LossAllowancePct,
		in.Account.PnlCumsumMax,
		in.Account.PnlCumsumLast,
	)

	return out, nil
}

// computeSide 计算单边仓位指标
func (e *Engine) computeSide(in *RiskInput, p *Position) (SideMetrics, error) {
	var m SideMetrics

	// 空边: 敞口/盈亏/偏离全为 0，不用算
	if p.IsEmpty() {
		return m, nil
	}

	m.Notional = posmath.QtyToCost(p.Size, p.Price, in.Params.CMult)
	m.WalletExposure = posmath.CalcWalletExposure(in.Params.CMult, in.Account.Balance, p.Size, p.Price)

	// 未实现盈亏: 把标记价当作假想平仓价
	if p.Side == contract.SideLong {
		m.UnrealizedPnL = posmath.CalcPnLLong(p.Price, in.MarkPrice, p.Size, in.Params.CMult)
	} else {
		m.UnrealizedPnL = posmath.CalcPnLShort(p.Price, in.MarkPrice, p.Size, in.Params.CMult)
	}

	diff, err := posmath.CalcPPriceDiff(p.Side, p.Price, in.MarkPrice)
	if err != nil {
		return SideMetrics{}, err
	}
	m.PriceDiff = diff

	return m, nil
}

// validateInput 输入校验
//
// 引擎层和 pkg/posmath 的裸公式不同: 这里按调用方合同做显式校验，
// 把编程错误在入口报出来，而不是让 NaN 渗进聚合结果。
func validateInput(in *RiskInput) error {
	if err := contract.ValidateParams(&in.Params); err != nil {
		return err
	}
	if in.MarkPrice <= 0 {
		return errors.New("mark price must be positive")
	}

	var haveLong, haveShort bool
	for i := range in.Positions {
		p := &in.Positions[i]
		if !p.Side.IsPosition() {
			return fmt.Errorf("invalid position side: %s", p.Side)
		}
		if p.Size < 0 {
			return fmt.Errorf("%s position size must be a magnitude, got %v", p.Side, p.Size)
		}
		switch p.Side {
		case contract.SideLong:
			if haveLong {
				return errors.New("at most one long position")
			}
			haveLong = true
		case contract.SideShort:
			if haveShort {
				return errors.New("at most one short position")
			}
			haveShort = true
		}
	}
	return nil
}
