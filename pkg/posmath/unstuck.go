// 文件: pkg/posmath/unstuck.go
// Auto-unstuck 亏损额度
//
// 强制平掉深套仓位 (unstuck) 时，允许再承担多少已实现亏损?
// 思路: 以历史权益峰值为基准给一个允许回撤百分比，
// 账户已经从峰值回撤多少，额度就相应扣掉多少。

package posmath

import "math"

// CalcAutoUnstuckAllowance 计算当前时点允许的 unstuck 亏损额度
//
// balance:          当前余额
// lossAllowancePct: 允许从峰值回撤的比例 (如 0.01 = 1%)
// pnlCumsumMax:     累计盈亏序列的历史最大值
// pnlCumsumLast:    累计盈亏序列的最新值
//
// balancePeak 用 "当前余额 + (历史盈亏峰值 - 当前累计盈亏)" 反推出
// 账户在盈亏峰值时点的余额。额度 = 峰值余额 × (允许回撤 + 已回撤)，
// 已回撤为非正数，所以额度随回撤加深而缩水，并钳制在 0 以上 ——
// 回撤超限时额度就是硬 0，不存在"负额度"。
//
// 前置条件: balancePeak != 0 由调用方保证，否则除零结果未定义。
func CalcAutoUnstuckAllowance(balance, lossAllowancePct, pnlCumsumMax, pnlCumsumLast float64) float64 {
	balancePeak := balance + (pnlCumsumMax - pnlCumsumLast)
	dropSincePeakPct := balance/balancePeak - 1.0
	return math.Max(0.0, balancePeak*(lossAllowancePct+dropSincePeakPct))
}
