package export_report

// Request параметры экспорта
type Request struct {
	// Path путь к CSV-файлу; существующий файл перезаписывается целиком
	Path string
}

// Response результат экспорта
type Response struct {
	Path string
	Rows int // количество строк данных без учета заголовка
}
