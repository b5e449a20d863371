package reference

// defaultFoods is the built-in food reference table, values per 100 g.
// Entries are grouped roughly by aisle; search preserves this order within
// each ranking group.
var defaultFoods = []FoodEntry{
	// Frutta
	{Name: "Mele fresche", Calories: 52, Protein: 0.3, Fat: 0.2, Carbs: 13.8, Fiber: 2.4, Sugar: 10.4, Source: "crea"},
	{Name: "Banane", Calories: 89, Protein: 1.1, Fat: 0.3, Carbs: 22.8, Fiber: 2.6, Sugar: 12.2, Source: "crea"},
	{Name: "Arance", Calories: 47, Protein: 0.9, Fat: 0.1, Carbs: 11.8, Fiber: 2.4, Sugar: 9.4, Source: "crea"},
	{Name: "Pere", Calories: 57, Protein: 0.4, Fat: 0.1, Carbs: 15.2, Fiber: 3.1, Sugar: 9.8, Source: "crea"},
	{Name: "Fragole", Calories: 32, Protein: 0.7, Fat: 0.3, Carbs: 7.7, Fiber: 2.0, Sugar: 4.9, Source: "crea"},
	{Name: "Uva", Calories: 69, Protein: 0.7, Fat: 0.2, Carbs: 18.1, Fiber: 0.9, Sugar: 15.5, Source: "crea"},
	{Name: "Kiwi", Calories: 61, Protein: 1.1, Fat: 0.5, Carbs: 14.7, Fiber: 3.0, Sugar: 9.0, Source: "crea"},
	{Name: "Succo di mela", Calories: 46, Protein: 0.1, Fat: 0.1, Carbs: 11.3, Fiber: 0.2, Sugar: 9.6, Source: "crea"},

	// Verdura
	{Name: "Melanzane", Calories: 25, Protein: 1.0, Fat: 0.2, Carbs: 5.9, Fiber: 3.0, Sugar: 3.5, Source: "crea"},
	{Name: "Pomodori", Calories: 18, Protein: 0.9, Fat: 0.2, Carbs: 3.9, Fiber: 1.2, Sugar: 2.6, Source: "crea"},
	{Name: "Zucchine", Calories: 17, Protein: 1.2, Fat: 0.3, Carbs: 3.1, Fiber: 1.0, Sugar: 2.5, Source: "crea"},
	{Name: "Carote", Calories: 41, Protein: 0.9, Fat: 0.2, Carbs: 9.6, Fiber: 2.8, Sugar: 4.7, Source: "crea"},
	{Name: "Spinaci", Calories: 23, Protein: 2.9, Fat: 0.4, Carbs: 3.6, Fiber: 2.2, Sugar: 0.4, Source: "crea"},
	{Name: "Broccoli", Calories: 34, Protein: 2.8, Fat: 0.4, Carbs: 6.6, Fiber: 2.6, Sugar: 1.7, Source: "crea"},
	{Name: "Patate", Calories: 77, Protein: 2.0, Fat: 0.1, Carbs: 17.5, Fiber: 2.2, Sugar: 0.8, Source: "crea"},
	{Name: "Insalata", Calories: 15, Protein: 1.4, Fat: 0.2, Carbs: 2.9, Fiber: 1.3, Sugar: 0.8, Source: "crea"},

	// Cereali e derivati
	{Name: "Pasta di semola", Calories: 353, Protein: 10.9, Fat: 1.4, Carbs: 79.1, Fiber: 2.7, Sugar: 4.2, Source: "crea"},
	{Name: "Riso bianco", Calories: 332, Protein: 6.7, Fat: 0.4, Carbs: 80.4, Fiber: 1.0, Sugar: 0.2, Source: "crea"},
	{Name: "Pane comune", Calories: 265, Protein: 8.1, Fat: 0.5, Carbs: 63.5, Fiber: 3.8, Sugar: 2.0, Source: "crea"},
	{Name: "Pane integrale", Calories: 224, Protein: 7.5, Fat: 1.3, Carbs: 48.5, Fiber: 6.5, Sugar: 2.1, Source: "crea"},
	{Name: "Fiocchi d'avena", Calories: 389, Protein: 16.9, Fat: 6.9, Carbs: 66.3, Fiber: 10.6, Sugar: 0.9, Source: "crea"},
	{Name: "Farro", Calories: 335, Protein: 15.1, Fat: 2.5, Carbs: 67.1, Fiber: 6.8, Sugar: 2.7, Source: "crea"},

	// Proteine animali
	{Name: "Petto di pollo", Calories: 110, Protein: 23.3, Fat: 0.8, Carbs: 0, Fiber: 0, Sugar: 0, Source: "crea"},
	{Name: "Tacchino", Calories: 107, Protein: 24.0, Fat: 1.2, Carbs: 0, Fiber: 0, Sugar: 0, Source: "crea"},
	{Name: "Manzo magro", Calories: 131, Protein: 21.8, Fat: 5.1, Carbs: 0, Fiber: 0, Sugar: 0, Source: "crea"},
	{Name: "Tonno al naturale", Calories: 103, Protein: 25.1, Fat: 0.3, Carbs: 0, Fiber: 0, Sugar: 0, Source: "crea"},
	{Name: "Salmone", Calories: 185, Protein: 18.4, Fat: 12.0, Carbs: 0, Fiber: 0, Sugar: 0, Source: "crea"},
	{Name: "Uova di gallina", Calories: 128, Protein: 12.4, Fat: 8.7, Carbs: 0.5, Fiber: 0, Sugar: 0.5, Source: "crea"},
	{Name: "Prosciutto crudo", Calories: 224, Protein: 25.5, Fat: 13.0, Carbs: 0, Fiber: 0, Sugar: 0, Source: "crea"},

	// Latticini
	{Name: "Latte intero", Calories: 64, Protein: 3.3, Fat: 3.6, Carbs: 4.9, Fiber: 0, Sugar: 4.9, Source: "crea"},
	{Name: "Latte scremato", Calories: 36, Protein: 3.6, Fat: 0.2, Carbs: 5.3, Fiber: 0, Sugar: 5.3, Source: "crea"},
	{Name: "Yogurt greco", Calories: 97, Protein: 9.0, Fat: 5.0, Carbs: 3.8, Fiber: 0, Sugar: 3.8, Source: "crea"},
	{Name: "Parmigiano Reggiano", Calories: 392, Protein: 33.0, Fat: 28.4, Carbs: 0, Fiber: 0, Sugar: 0, Source: "crea"},
	{Name: "Mozzarella", Calories: 253, Protein: 18.7, Fat: 19.5, Carbs: 0.7, Fiber: 0, Sugar: 0.7, Source: "crea"},
	{Name: "Ricotta", Calories: 146, Protein: 8.8, Fat: 10.9, Carbs: 3.5, Fiber: 0, Sugar: 3.5, Source: "crea"},

	// Legumi e frutta secca
	{Name: "Ceci lessati", Calories: 120, Protein: 7.0, Fat: 2.4, Carbs: 18.9, Fiber: 5.8, Sugar: 0.6, Source: "crea"},
	{Name: "Lenticchie lessate", Calories: 92, Protein: 6.9, Fat: 0.5, Carbs: 16.3, Fiber: 8.3, Sugar: 0.7, Source: "crea"},
	{Name: "Fagioli borlotti", Calories: 91, Protein: 6.9, Fat: 0.5, Carbs: 16.4, Fiber: 6.9, Sugar: 0.4, Source: "crea"},
	{Name: "Mandorle", Calories: 603, Protein: 22.0, Fat: 55.3, Carbs: 4.6, Fiber: 12.7, Sugar: 3.9, Source: "crea"},
	{Name: "Noci", Calories: 689, Protein: 14.3, Fat: 68.1, Carbs: 5.1, Fiber: 6.2, Sugar: 3.1, Source: "crea"},

	// Condimenti e altro
	{Name: "Olio extravergine d'oliva", Calories: 884, Protein: 0, Fat: 100, Carbs: 0, Fiber: 0, Sugar: 0, Source: "crea"},
	{Name: "Miele", Calories: 304, Protein: 0.6, Fat: 0, Carbs: 80.3, Fiber: 0, Sugar: 80.3, Source: "crea"},
	{Name: "Cioccolato fondente", Calories: 515, Protein: 6.6, Fat: 33.6, Carbs: 49.7, Fiber: 8.0, Sugar: 41.6, Source: "crea"},
	{Name: "Marmellata di arance", Calories: 222, Protein: 0.5, Fat: 0, Carbs: 58.7, Fiber: 0.6, Sugar: 58.0, Source: "crea"},
}
