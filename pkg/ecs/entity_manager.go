// Package ecs 提供实体标识分配和密集数组的生命周期管理
//
// 实体以值的形式存放在按顺序排列的切片中，删除分两步：
// 先打标记（Active=false 或 Life<=0），再在帧末统一压缩。
package ecs

// EntityID 是实体的唯一标识符
type EntityID uint64

// InvalidEntityID 保留的无效ID
const InvalidEntityID EntityID = 0

// IDAllocator 分配单调递增的实体ID
type IDAllocator struct {
	nextID uint64
}

// NewIDAllocator 创建一个新的 IDAllocator 实例
func NewIDAllocator() *IDAllocator {
	return &IDAllocator{
		nextID: 1, // ID从1开始,0保留为无效ID
	}
}

// Next 返回新的唯一ID
func (a *IDAllocator) Next() EntityID {
	if a.nextID == 0 {
		a.nextID = 1
	}
	id := EntityID(a.nextID)
	a.nextID++
	return id
}

// Reset 重置分配器，下一个ID重新从1开始
func (a *IDAllocator) Reset() {
	a.nextID = 1
}

// Compact 原地压缩切片，仅保留 keep 返回 true 的元素
//
// 保持剩余元素的相对顺序，复用底层数组，不产生新的分配。
// 被移除的尾部元素会被清零，避免持有已删除实体引用的内存。
//
// 参数:
//   - items: 待压缩的实体切片
//   - keep: 判断元素是否保留
//
// 返回:
//   - []T: 压缩后的切片（与 items 共享底层数组）
func Compact[T any](items []T, keep func(*T) bool) []T {
	n := 0
	for i := range items {
		if keep(&items[i]) {
			if n != i {
				items[n] = items[i]
			}
			n++
		}
	}
	clear(items[n:])
	return items[:n]
}
