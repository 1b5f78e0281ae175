package model

// 未ログインユーザーのカート。
// DBではなくRedisにJSONで保存する（トークンごとに1つ）。
// 操作はすべて値を受けて新しい値を返す純関数で、元のスライスは変更しない。

type GuestCartItem struct {
	BookID   int64  `json:"book_id"`
	Title    string `json:"title"`
	Price    int64  `json:"price"`
	OldPrice int64  `json:"old_price"`
	ImageURL string `json:"image_url"`
	Quantity int64  `json:"quantity"`
}

// 並び順は追加順。同じbook_idは1件のみ。
type GuestCart []GuestCartItem

// Add は商品を追加する。
// 既存の同一book_idがあれば数量を加算（[1,999]に丸め）、無ければ末尾に追加。
func (c GuestCart) Add(book Book, qty int64) GuestCart {
	item := GuestCartItem{
		BookID:   book.ID,
		Title:    book.Title,
		Price:    book.Price,
		OldPrice: book.OldPrice,
		ImageURL: book.ImageURL,
		Quantity: ClampQuantity(qty),
	}

	out := make(GuestCart, 0, len(c)+1)
	found := false
	for _, it := range c {
		if it.BookID == book.ID {
			item.Quantity = ClampQuantity(it.Quantity + qty)
			out = append(out, item)
			found = true
			continue
		}
		out = append(out, it)
	}
	if !found {
		out = append(out, item)
	}
	return out
}

// UpdateQuantity は該当明細の数量を[1,999]に丸めて上書きする。
// 該当が無ければ何も変わらない。
func (c GuestCart) UpdateQuantity(bookID int64, qty int64) GuestCart {
	out := make(GuestCart, 0, len(c))
	for _, it := range c {
		if it.BookID == bookID {
			it.Quantity = ClampQuantity(qty)
		}
		out = append(out, it)
	}
	return out
}

// Remove は該当明細を取り除く。他の明細の順序は保つ。
func (c GuestCart) Remove(bookID int64) GuestCart {
	out := make(GuestCart, 0, len(c))
	for _, it := range c {
		if it.BookID == bookID {
			continue
		}
		out = append(out, it)
	}
	return out
}

// Count は数量の合計。壊れたデータ（0以下）は0として数える。
func (c GuestCart) Count() int64 {
	var total int64
	for _, it := range c {
		if it.Quantity <= 0 {
			continue
		}
		total += it.Quantity
	}
	return total
}

// Subtotal は価格×数量の合計。
func (c GuestCart) Subtotal() int64 {
	var total int64
	for _, it := range c {
		if it.Quantity <= 0 {
			continue
		}
		total += it.Price * it.Quantity
	}
	return total
}
