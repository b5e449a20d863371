package reference

// defaultActivities is the built-in activity reference table. MET values
// follow the Compendium of Physical Activities; names are the product's
// display strings.
var defaultActivities = []ActivityEntry{
	// Camminata e corsa
	{Name: "Camminata lenta (4 km/h)", MET: 2.8, Category: "camminata"},
	{Name: "Camminata veloce (6 km/h)", MET: 4.3, Category: "camminata"},
	{Name: "Camminata in salita", MET: 6.0, Category: "camminata"},
	{Name: "Corsa leggera (8 km/h)", MET: 8.3, Category: "corsa"},
	{Name: "Corsa (10 km/h)", MET: 9.8, Category: "corsa"},
	{Name: "Corsa veloce (12 km/h)", MET: 11.8, Category: "corsa"},

	// Ciclismo
	{Name: "Ciclismo rilassato (<16 km/h)", MET: 4.0, Category: "ciclismo"},
	{Name: "Ciclismo moderato (16-20 km/h)", MET: 6.8, Category: "ciclismo"},
	{Name: "Ciclismo intenso (>20 km/h)", MET: 8.0, Category: "ciclismo"},
	{Name: "Cyclette", MET: 6.8, Category: "ciclismo"},

	// Nuoto
	{Name: "Nuoto stile libero", MET: 5.8, Category: "nuoto"},
	{Name: "Nuoto a rana", MET: 5.3, Category: "nuoto"},
	{Name: "Nuoto agonistico", MET: 9.8, Category: "nuoto"},

	// Palestra
	{Name: "Pesi liberi", MET: 3.5, Category: "palestra"},
	{Name: "Allenamento a circuito", MET: 8.0, Category: "palestra"},
	{Name: "Corpo libero", MET: 3.8, Category: "palestra"},
	{Name: "Tapis roulant", MET: 7.0, Category: "palestra"},
	{Name: "Stretching", MET: 2.3, Category: "palestra"},
	{Name: "Yoga", MET: 2.5, Category: "palestra"},
	{Name: "Pilates", MET: 3.0, Category: "palestra"},

	// Sport
	{Name: "Calcio", MET: 7.0, Category: "sport"},
	{Name: "Calcetto", MET: 7.0, Category: "sport"},
	{Name: "Tennis singolo", MET: 8.0, Category: "sport"},
	{Name: "Padel", MET: 6.0, Category: "sport"},
	{Name: "Pallavolo", MET: 4.0, Category: "sport"},
	{Name: "Basket", MET: 6.5, Category: "sport"},
	{Name: "Sci alpino", MET: 5.3, Category: "sport"},
	{Name: "Arrampicata", MET: 7.5, Category: "sport"},

	// Quotidiane
	{Name: "Giardinaggio", MET: 3.8, Category: "quotidiane"},
	{Name: "Pulizie di casa", MET: 3.3, Category: "quotidiane"},
	{Name: "Salire le scale", MET: 4.0, Category: "quotidiane"},
	{Name: "Portare a spasso il cane", MET: 3.0, Category: "quotidiane"},
	{Name: "Ballo", MET: 4.8, Category: "quotidiane"},
}
