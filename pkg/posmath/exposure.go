// 文件: pkg/posmath/exposure.go
// 名义成本 / 钱包敞口 / 盈亏 / 偏离度
//
// 除零策略分两类，不能混:
// - 有防护的退化输入 (余额<=0、价格<=0、基准为0): 返回文档规定的 0/Inf
// - 无防护的退化输入 (步长为0等): 裸浮点语义原样传播

package posmath

import (
	"errors"
	"math"

	"posmath.com/pkg/contract"
)

var (
	// ErrInvalidSide 按方向取值的公式收到了非 Long/Short 的方向标签。
	// 这是调用方的编程错误，必须显式报出来，不能猜一个值返回。
	ErrInvalidSide = errors.New("side must be LONG or SHORT")
)

// QtyToCost 数量换算名义成本: |qty| * price * cMult，恒为非负
func QtyToCost(qty, price, cMult float64) float64 {
	return math.Abs(qty) * price * cMult
}

// CostToQty 名义成本换算数量
//
// price <= 0 时返回 0 (显式防护，不产生 Inf)。
func CostToQty(cost, price, cMult float64) float64 {
	if price > 0.0 {
		return (cost / price) / cMult
	}
	return 0.0
}

// CalcDiff 相对偏离度: |x-y| / |y|
//
// 零基准约定 (不对称，下游逻辑依赖这个精确行为，不要"修正"):
// - x、y 都为 0 → 0   (没有偏离)
// - 仅 y 为 0   → +Inf (相对零基准的偏离无界)
func CalcDiff(x, y float64) float64 {
	if y == 0.0 {
		if x == 0.0 {
			return 0.0
		}
		return math.Inf(1)
	}
	return math.Abs(x-y) / math.Abs(y)
}

// CalcWalletExposure 钱包敞口: 持仓名义成本占余额的比例
//
// balance <= 0 或 psize == 0 时返回 0:
// 前者防掉非正余额除法，后者避免空仓出现虚假敞口。
func CalcWalletExposure(cMult, balance, psize, pprice float64) float64 {
	if balance <= 0.0 || psize == 0.0 {
		return 0.0
	}
	return QtyToCost(psize, pprice, cMult) / balance
}

// CalcWalletExposureIfFilled 模拟一笔成交后的钱包敞口
//
// 用于下单前评估"这单成交后我的敞口会变成多少"。
// 纯模拟，不改任何真实状态。数量先取绝对值并按步长量化，
// 再走 CalcNewPosition 合并。
func CalcWalletExposureIfFilled(balance, psize, pprice, qty, price float64, params *contract.ExchangeParams) float64 {
	psize = Round(math.Abs(psize), params.QtyStep)
	qty = Round(math.Abs(qty), params.QtyStep)
	newPsize, newPprice := CalcNewPosition(psize, pprice, qty, price, params.QtyStep)
	return CalcWalletExposure(params.CMult, balance, newPsize, newPprice)
}

// CalcPnLLong 多头已实现盈亏: |qty| * cMult * (平仓价 - 开仓价)
func CalcPnLLong(entryPrice, closePrice, qty, cMult float64) float64 {
	return math.Abs(qty) * cMult * (closePrice - entryPrice)
}

// CalcPnLShort 空头已实现盈亏: |qty| * cMult * (开仓价 - 平仓价)
func CalcPnLShort(entryPrice, closePrice, qty, cMult float64) float64 {
	return math.Abs(qty) * cMult * (entryPrice - closePrice)
}

// CalcPPriceDiff 价格相对开仓均价的带符号偏离
//
// 符号约定: 结果为正表示当前价格在"亏损方向"上偏离开仓均价。
// - 多头: 1 - price/pprice  (价格跌破均价时为正)
// - 空头: price/pprice - 1  (镜像)
//
// pprice <= 0 (无仓位/非法均价) 时返回 0。
// 方向不是 Long/Short 时返回 ErrInvalidSide。
func CalcPPriceDiff(side contract.Side, pprice, price float64) (float64, error) {
	switch side {
	case contract.SideLong:
		if pprice > 0.0 {
			return 1.0 - price/pprice, nil
		}
		return 0.0, nil
	case contract.SideShort:
		if pprice > 0.0 {
			return price/pprice - 1.0, nil
		}
		return 0.0, nil
	}
	return 0.0, ErrInvalidSide
}
