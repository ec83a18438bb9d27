package cart

import (
	"encoding/json"
	"fmt"
	"strings"
)

// KV — порт персистентности корзины (ключ-значение).
// В браузерном клиенте за ним стоит local storage, в тестах — память.
type KV interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// storageKey — ключ, под которым корзина хранится в KV.
const storageKey = "clorywears_cart_v1"

// Пределы количества для одной позиции корзины.
const (
	MinQuantity = 1
	MaxQuantity = 99
)

// Item — позиция корзины: ссылка на товар плюс вариант (размер, цвет).
// Уникальность позиции определяется тройкой (id, size, color).
type Item struct {
	ProductID string `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	PriceNGN  int    `json:"priceNgn"`
	Image     string `json:"image"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity"`
}

func lineKey(id, size, color string) string {
	return strings.ToLower(id + "__" + size + "__" + color)
}

func clampQuantity(q int) int {
	if q < MinQuantity {
		return MinQuantity
	}
	if q > MaxQuantity {
		return MaxQuantity
	}
	return q
}

// Store — корзина с явным состоянием и внедренным портом персистентности.
// Каждая мутация сразу сохраняет состояние в KV.
type Store struct {
	kv    KV
	items []Item
}

// NewStore загружает корзину из KV. Поврежденный JSON отбрасывается,
// количество каждой позиции нормализуется к допустимому диапазону.
func NewStore(kv KV) *Store {
	s := &Store{kv: kv}

	raw, ok := kv.Get(storageKey)
	if !ok || raw == "" {
		return s
	}

	var stored []Item
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return s
	}
	for _, it := range stored {
		if it.ProductID == "" {
			continue
		}
		it.Quantity = clampQuantity(it.Quantity)
		s.items = append(s.items, it)
	}
	return s
}

// Add добавляет позицию. Существующая комбинация (id, size, color)
// увеличивает количество вместо дублирования строки.
func (s *Store) Add(item Item, qty int) error {
	if item.ProductID == "" {
		return fmt.Errorf("cart: product id is required")
	}
	qty = clampQuantity(qty)

	k := lineKey(item.ProductID, item.Size, item.Color)
	for i := range s.items {
		if lineKey(s.items[i].ProductID, s.items[i].Size, s.items[i].Color) == k {
			s.items[i].Quantity = clampQuantity(s.items[i].Quantity + qty)
			return s.persist()
		}
	}

	item.Quantity = qty
	s.items = append(s.items, item)
	return s.persist()
}

// SetQuantity выставляет количество позиции с клампом к [1, 99].
func (s *Store) SetQuantity(id, size, color string, qty int) error {
	k := lineKey(id, size, color)
	for i := range s.items {
		if lineKey(s.items[i].ProductID, s.items[i].Size, s.items[i].Color) == k {
			s.items[i].Quantity = clampQuantity(qty)
			return s.persist()
		}
	}
	return nil
}

// Remove удаляет позицию по ключу (id, size, color).
func (s *Store) Remove(id, size, color string) error {
	k := lineKey(id, size, color)
	next := s.items[:0]
	for _, it := range s.items {
		if lineKey(it.ProductID, it.Size, it.Color) != k {
			next = append(next, it)
		}
	}
	s.items = next
	return s.persist()
}

// Clear очищает корзину.
func (s *Store) Clear() error {
	s.items = nil
	return s.persist()
}

// Items возвращает копию позиций корзины.
func (s *Store) Items() []Item {
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// TotalItems — суммарное количество единиц товара.
func (s *Store) TotalItems() int {
	total := 0
	for _, it := range s.items {
		total += it.Quantity
	}
	return total
}

// SubtotalNGN — сумма позиций без доставки.
func (s *Store) SubtotalNGN() int {
	total := 0
	for _, it := range s.items {
		total += it.PriceNGN * it.Quantity
	}
	return total
}

func (s *Store) persist() error {
	b, err := json.Marshal(s.items)
	if err != nil {
		return fmt.Errorf("cart: marshal items: %w", err)
	}
	if err := s.kv.Set(storageKey, string(b)); err != nil {
		return fmt.Errorf("cart: persist items: %w", err)
	}
	return nil
}

// MemoryKV — KV в памяти, для тестов и инструментов.
type MemoryKV struct {
	data map[string]string
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string]string)}
}

func (m *MemoryKV) Get(key string) (string, bool) {
	v, ok := m.data[key]
	return v, ok
}

func (m *MemoryKV) Set(key, value string) error {
	m.data[key] = value
	return nil
}
