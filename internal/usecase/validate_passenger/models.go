package validate_passenger

// Request сырые значения полей формы пассажира
// Age передается строкой: парсинг входит в валидацию.
type Request struct {
	Name        string
	Age         string
	Source      string
	Destination string
}

// PriceRow строка информационной таблицы цен
type PriceRow struct {
	Destination string
	Price       int
}

// Response результат успешной валидации
type Response struct {
	Name        string // имя с обрезанными пробелами по краям
	Age         int
	Source      string
	Destination string

	// Price цена выбранного направления по каталогу
	// Справочное значение: в билет цена попадает только при подтверждении
	// оплаты (там же применяется VIP-переопределение).
	Price int

	// PriceTable полный каталог цен в лексикографическом порядке
	// Показывается пользователю как информационный шаг перед оплатой.
	PriceTable []PriceRow
}
