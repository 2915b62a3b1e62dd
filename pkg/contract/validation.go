// 文件: pkg/contract/validation.go
// 合约参数验证
//
// 注意: 这是给调用方用的可选防御层。
// pkg/posmath 的公式本身不做校验 —— 传入非法步长产生的 Inf/NaN
// 按文档原样传播，这是刻意的合同设计。

package contract

import "errors"

// ValidateParams 验证交易所参数并补全缺省值
func ValidateParams(p *ExchangeParams) error {
	if p.QtyStep <= 0 {
		return errors.New("qty step must be positive")
	}
	if p.CMult <= 0 {
		return errors.New("contract multiplier must be positive")
	}
	if p.PriceStep <= 0 {
		// 缺省: 跟数量步长同一个数量级
		p.PriceStep = p.QtyStep
	}
	if p.MinQty <= 0 {
		// 缺省: 最小下单量就是一个步长
		p.MinQty = p.QtyStep
	}
	if p.MinCost < 0 {
		return errors.New("min cost must not be negative")
	}
	return nil
}
