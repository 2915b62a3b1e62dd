// 文件: pkg/posmath/position.go
// 持仓合并: 成交 (fill) 并入持仓后的新数量/新均价
//
// 这是整个库里最容易写错的公式。边界顺序必须严格如下:
// 1. 成交量为 0 → 持仓原样返回
// 2. 原持仓为 0 → 成交直接成为新持仓 (不和未定义的旧均价做加权)
// 3. 合并后按步长量化恰好归零 → 返回 (0, 0)，均价必须重置而不是留脏值
// 4. 其余情况 → 数量加权平均均价

package posmath

import "math"

// CalcNewPosition 把一笔成交并入持仓，返回新的 (数量, 均价)
//
// psize/pprice: 当前持仓数量与开仓均价
// qty/price:    本次成交的数量与价格 (数量带符号，减仓传负数)
// qtyStep:      数量步长
//
// 保证: 返回的数量总是步长量化过的；数量为 0 时均价恰好为 0。
// 本函数不校验输入，数值退化 (极小 newPsize 导致的大权重) 按普通
// 浮点结果传播。
func CalcNewPosition(psize, pprice, qty, price, qtyStep float64) (float64, float64) {
	if qty == 0.0 {
		return psize, pprice
	}
	if psize == 0.0 {
		return qty, price
	}

	newPsize := Round(psize+qty, qtyStep)
	if newPsize == 0.0 {
		// 本笔成交恰好平掉全部持仓
		return 0.0, 0.0
	}

	// 数量加权平均。旧均价若是 NaN 按 0 处理:
	// 走到这里 pprice 本不该是 NaN (边界 2 已拦截空仓)，
	// 但调用方误用时也不能让 NaN 污染整条均价链。
	newPprice := nanToZero(pprice)*(psize/newPsize) + price*(qty/newPsize)
	return newPsize, newPprice
}

// nanToZero NaN 归零
func nanToZero(value float64) float64 {
	if math.IsNaN(value) {
		return 0.0
	}
	return value
}
