package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kingpin"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"winepage"
	"winepage/excel"
	"winepage/page"
)

func main() {
	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
		<-ch
		fmt.Println("\n⏹️  Выполнение прервано пользователем")
		os.Exit(130)
	}()

	os.Exit(run())
}

func run() int {
	_ = godotenv.Load()

	var flags winepage.Config
	kingpin.Flag("excel-file", "Путь к Excel файлу").StringVar(&flags.ExcelFile)
	kingpin.Flag("template", "Путь к HTML шаблону").StringVar(&flags.TemplateFile)
	kingpin.Flag("output", "Путь для сохранения HTML").StringVar(&flags.OutputFile)
	kingpin.Flag("foundation-year", "Год основания винодельни").IntVar(&flags.FoundationYear)
	kingpin.Parse()

	cfg, err := winepage.Resolve(flags)
	if err != nil {
		fmt.Printf("❌ Ошибка конфигурации: %v\n", err)
		return 1
	}

	fmt.Println("🚀 Запуск генератора сайта")
	fmt.Printf("⚙️  Конфигурация: excel=%s, template=%s, output=%s, foundation=%d, current=%d\n",
		cfg.ExcelFile, cfg.TemplateFile, cfg.OutputFile, cfg.FoundationYear, cfg.CurrentYear)

	rows, err := excel.LoadCatalog(cfg.ExcelFile)
	if err != nil {
		return fail(err)
	}
	catalog := winepage.Group(rows)

	years := winepage.Age(cfg.FoundationYear, cfg.CurrentYear)
	yearWord := winepage.YearWord(years)

	html, err := page.Render(catalog, years, yearWord, cfg.TemplateFile)
	if err != nil {
		return fail(err)
	}
	if err := page.Save(html, cfg.OutputFile); err != nil {
		return fail(err)
	}

	fmt.Println("✅ Каталог вин загружен и сгруппирован")
	fmt.Println("✅ HTML-страница успешно сгенерирована")

	printSummary(cfg, winepage.Summarize(catalog), years, yearWord)
	return 0
}

// fail maps each failure kind to its single-line operator message.
// Every failure is terminal; nothing is retried or downgraded.
func fail(err error) int {
	var missing *excel.MissingColumnsError
	switch {
	case errors.Is(err, excel.ErrNotFound):
		fmt.Printf("❌ Файл не найден: %v\n", err)
	case errors.Is(err, excel.ErrEmptyData):
		fmt.Println("❌ Ошибка: Excel-файл пуст")
	case errors.Is(err, excel.ErrParse):
		fmt.Printf("❌ Ошибка парсинга Excel: %v\n", err)
	case errors.As(err, &missing):
		fmt.Printf("❌ Ошибка структуры данных: %v\n", err)
	case errors.Is(err, page.ErrTemplateNotFound):
		fmt.Printf("❌ Шаблон не найден: %v\n", err)
	default:
		fmt.Printf("❌ Ошибка ввода-вывода: %v\n", err)
	}
	return 1
}

func printSummary(cfg winepage.Config, sum winepage.Summary, years int, yearWord string) {
	p := message.NewPrinter(language.Russian)
	p.Printf("\n📊 Отчет:\n")
	p.Printf("   • Винодельне: %d %s\n", years, yearWord)
	p.Printf("   • Файл: %s\n", cfg.ExcelFile)
	p.Printf("   • Шаблон: %s\n", cfg.TemplateFile)
	p.Printf("   • Результат: %s\n", cfg.OutputFile)
	p.Printf("   • Вина по категориям:\n")
	for _, cc := range sum.Categories {
		p.Printf("     - %s: %d\n", cc.Category, cc.Count)
	}
	p.Printf("   • Всего: %d\n", sum.Total)
}
