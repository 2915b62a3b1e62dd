// 文件: pkg/posmath/round.go
// 步长量化 (step quantization)
//
// 交易所只接受步长整数倍的价格/数量，本文件负责把任意 float64
// 吸附到步长网格上。
//
// 【为什么二次舍入到 12 位小数?】
// n/step 再乘回 step 会引入浮点表示噪声 (如 0.30000000000000004)。
// 上层策略引擎要求同一输入反复量化得到逐位相同的结果，
// 所以每次步长舍入后固定再舍到 12 位小数，把噪声压掉。

package posmath

import "math"

// roundToDecimalPlaces 舍入到指定小数位数
func roundToDecimalPlaces(value float64, decimalPlaces int) float64 {
	multiplier := math.Pow(10, float64(decimalPlaces))
	return math.Round(value*multiplier) / multiplier
}

// RoundUp 向上取整到步长的整数倍 (>= n 的最小倍数)
//
// 前置条件: step > 0。step == 0 属于未定义行为，
// 除零产生的 Inf/NaN 原样返回，不做兜底。
func RoundUp(n, step float64) float64 {
	result := math.Ceil(n/step) * step
	return roundToDecimalPlaces(result, 12)
}

// Round 取整到最近的步长整数倍
//
// 平台舍入约定: 恰好一半时远离零舍入 (math.Round 语义)。
func Round(n, step float64) float64 {
	result := math.Round(n/step) * step
	return roundToDecimalPlaces(result, 12)
}

// RoundDn 向下取整到步长的整数倍 (<= n 的最大倍数)
func RoundDn(n, step float64) float64 {
	result := math.Floor(n/step) * step
	return roundToDecimalPlaces(result, 12)
}
