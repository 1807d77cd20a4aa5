package service

import "github.com/fresh-groceries/internal/constants"

// allowedTransitions 订单状态流转图
// SetStatus 不受此约束，这里描述的是正常履约路径
var allowedTransitions = map[constants.OrderStatus][]constants.OrderStatus{
	constants.OrderStatusCreated:   {constants.OrderStatusAccepted, constants.OrderStatusPreparing, constants.OrderStatusCancelled},
	constants.OrderStatusAccepted:  {constants.OrderStatusPreparing, constants.OrderStatusCancelled},
	constants.OrderStatusPreparing: {constants.OrderStatusOnTheWay, constants.OrderStatusCancelled},
	constants.OrderStatusOnTheWay:  {constants.OrderStatusDelivered},
	constants.OrderStatusDelivered: nil,
	constants.OrderStatusCancelled: nil,
}

func isTransitionAllowed(from, to constants.OrderStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// sourceStatusesFor 返回允许流转到 target 的全部来源状态
func sourceStatusesFor(target constants.OrderStatus) []constants.OrderStatus {
	sources := make([]constants.OrderStatus, 0, 2)
	for _, from := range []constants.OrderStatus{
		constants.OrderStatusCreated,
		constants.OrderStatusAccepted,
		constants.OrderStatusPreparing,
		constants.OrderStatusOnTheWay,
		constants.OrderStatusDelivered,
		constants.OrderStatusCancelled,
	} {
		if isTransitionAllowed(from, target) {
			sources = append(sources, from)
		}
	}
	return sources
}
