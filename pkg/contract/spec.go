// 文件: pkg/contract/spec.go
// 交易所合约参数定义
//
// 设计目标:
// 1. 不可变: 参数由调用方按 symbol 构造，创建后只读，安全共享
// 2. 零依赖: 纯数值结构，不挂存储、不挂网络
// 3. 为什么用 float64 而不是定点数?
//    → 本库的合同就是裸 IEEE-754 语义（NaN/Inf 按文档传播），
//      上层策略引擎依赖量化后数值逐位稳定

package contract

// =============================================================================
// ExchangeParams - 合约参数 (核心结构)
// =============================================================================

// ExchangeParams 单个 symbol 的交易所约束参数
//
// 本库的公式只消费 QtyStep 和 CMult，其余字段属于同一份交易所元数据，
// 由调用方在下单校验时使用。
//
// 调用方保证: QtyStep > 0, CMult > 0。
// 传 0 属于未定义行为，除法会产生 Inf/NaN 并原样传播（不静默吞掉）。
type ExchangeParams struct {
	// ===== 数量/价格步长 =====
	QtyStep   float64 // 最小数量增量 (如 0.001 BTC)
	PriceStep float64 // 最小价格增量 (tick size)

	// ===== 下单约束 =====
	MinQty  float64 // 最小下单数量
	MinCost float64 // 最小下单名义价值

	// ===== 合约乘数 =====
	// 把 数量 × 价格 换算成名义成本:
	// - 线性合约 (USDT 本位) 通常为 1.0
	// - 反向/币本位合约按合约面值设置
	CMult float64
}

// =============================================================================
// 便捷方法
// =============================================================================

// IsLinear 是否为标准线性合约 (乘数为 1)
func (p *ExchangeParams) IsLinear() bool {
	return p.CMult == 1.0
}

// MeetsMinQty 数量是否达到最小下单数量
func (p *ExchangeParams) MeetsMinQty(qty float64) bool {
	if qty < 0 {
		qty = -qty
	}
	return qty >= p.MinQty
}

// MeetsMinCost 名义价值是否达到最小下单价值
func (p *ExchangeParams) MeetsMinCost(qty, price float64) bool {
	if qty < 0 {
		qty = -qty
	}
	return qty*price*p.CMult >= p.MinCost
}
