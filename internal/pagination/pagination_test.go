package pagination

import "testing"

func ints(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestPaginate_FirstPage(t *testing.T) {
	p := Paginate(ints(25), 1, 10)

	if p.Total != 25 {
		t.Errorf("ожидали total=25, получили %d", p.Total)
	}
	if p.TotalPages != 3 {
		t.Errorf("ожидали 3 страницы, получили %d", p.TotalPages)
	}
	if len(p.Items) != 10 {
		t.Errorf("ожидали 10 элементов, получили %d", len(p.Items))
	}
	if p.Items[0] != 1 || p.Items[9] != 10 {
		t.Errorf("неверный срез первой страницы: %v", p.Items)
	}
	if p.HasPrev {
		t.Error("на первой странице не должно быть prev")
	}
	if !p.HasNext || p.NextPage != 2 {
		t.Errorf("ожидали next=2, получили hasNext=%v next=%d", p.HasNext, p.NextPage)
	}
}

func TestPaginate_LastPartialPage(t *testing.T) {
	p := Paginate(ints(25), 3, 10)

	if len(p.Items) != 5 {
		t.Errorf("ожидали хвост из 5 элементов, получили %d", len(p.Items))
	}
	if p.Items[0] != 21 || p.Items[4] != 25 {
		t.Errorf("неверный срез последней страницы: %v", p.Items)
	}
	if p.HasNext {
		t.Error("на последней странице не должно быть next")
	}
	if !p.HasPrev || p.PrevPage != 2 {
		t.Errorf("ожидали prev=2, получили hasPrev=%v prev=%d", p.HasPrev, p.PrevPage)
	}
}

func TestPaginate_PageBeyondEndClamped(t *testing.T) {
	p := Paginate(ints(25), 99, 10)

	if p.Page != 3 {
		t.Errorf("страница за пределами должна прижиматься к последней, получили %d", p.Page)
	}
	if len(p.Items) != 5 {
		t.Errorf("ожидали элементы последней страницы, получили %d", len(p.Items))
	}
}

func TestPaginate_Empty(t *testing.T) {
	p := Paginate([]int{}, 1, 10)

	if p.Total != 0 {
		t.Errorf("ожидали total=0, получили %d", p.Total)
	}
	if p.TotalPages != 1 {
		t.Errorf("у пустого списка одна пустая страница, получили %d", p.TotalPages)
	}
	if len(p.Items) != 0 {
		t.Errorf("ожидали пустую страницу, получили %v", p.Items)
	}
	if p.HasPrev || p.HasNext {
		t.Error("у пустого списка нет соседних страниц")
	}
}

func TestPaginate_ExactMultiple(t *testing.T) {
	p := Paginate(ints(20), 2, 10)

	if p.TotalPages != 2 {
		t.Errorf("ожидали ровно 2 страницы, получили %d", p.TotalPages)
	}
	if len(p.Items) != 10 {
		t.Errorf("ожидали полную страницу, получили %d", len(p.Items))
	}
	if p.HasNext {
		t.Error("вторая из двух страниц не имеет next")
	}
}

func TestPaginate_LimitLargerThanTotal(t *testing.T) {
	p := Paginate(ints(3), 1, 100)

	if p.TotalPages != 1 {
		t.Errorf("ожидали одну страницу, получили %d", p.TotalPages)
	}
	if len(p.Items) != 3 {
		t.Errorf("ожидали все 3 элемента, получили %d", len(p.Items))
	}
}
