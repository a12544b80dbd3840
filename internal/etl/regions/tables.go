package regions

import "regexp"

// kw expands a region's keyword list into ordered rules.
func kw(region string, keywords ...string) []KeywordRule {
	rules := make([]KeywordRule, len(keywords))
	for i, k := range keywords {
		rules[i] = KeywordRule{Keyword: k, Region: region}
	}
	return rules
}

func concat(groups ...[]KeywordRule) []KeywordRule {
	var out []KeywordRule
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// DefaultTables returns the built-in gazetteer for the countries the
// directory covers. "UK" and "GB" share the United Kingdom table.
func DefaultTables() map[string]Table {
	tables := map[string]Table{
		"NL": netherlandsTable(),
		"GB": unitedKingdomTable(),
		"FR": franceTable(),
		"DE": germanyTable(),
		"BE": belgiumTable(),
	}
	tables["UK"] = tables["GB"]
	return tables
}

func netherlandsTable() Table {
	return Table{
		Keywords: concat(
			kw("Groningen", "groningen"),
			kw("Friesland", "friesland", "fryslân", "fryslan", "leeuwarden", "drachten", "heerenveen", "sneek"),
			kw("Drenthe", "drenthe", "assen", "emmen", "hoogeveen", "meppel"),
			kw("Overijssel", "overijssel", "enschede", "zwolle", "deventer", "hengelo", "almelo"),
			kw("Flevoland", "flevoland", "lelystad", "almere", "emmeloord", "dronten"),
			kw("Gelderland", "gelderland", "arnhem", "nijmegen", "apeldoorn", "ede", "doetinchem"),
			kw("Utrecht", "utrecht", "amersfoort", "veenendaal", "nieuwegein", "zeist"),
			kw("Noord-Holland", "noord-holland", "noord holland", "north holland", "amsterdam", "haarlem", "alkmaar", "hoorn", "den helder", "zaanstad", "zaandam", "haarlemmermeer"),
			kw("Zuid-Holland", "zuid-holland", "zuid holland", "south holland", "rotterdam", "den haag", "dordrecht", "leiden", "delft", "gouda", "zoetermeer"),
			kw("Zeeland", "zeeland", "middelburg", "vlissingen", "terneuzen", "goes"),
			kw("Noord-Brabant", "noord-brabant", "noord brabant", "north brabant", "eindhoven", "tilburg", "breda", "den bosch", "'s-hertogenbosch", "roosendaal"),
			kw("Limburg", "limburg", "maastricht", "venlo", "roermond", "sittard", "heerlen"),
		),
		Postal: &PostalScheme{
			Pattern:   regexp.MustCompile(`\b(\d{4})\b`),
			PrefixLen: 1,
			Prefixes: []PrefixRule{
				{"1", []string{"Noord-Holland"}},
				{"2", []string{"Noord-Holland", "Zuid-Holland"}},
				{"3", []string{"Utrecht", "Zuid-Holland"}},
				{"4", []string{"Zuid-Holland", "Noord-Brabant", "Zeeland"}},
				{"5", []string{"Noord-Brabant", "Limburg"}},
				{"6", []string{"Gelderland", "Limburg"}},
				{"7", []string{"Gelderland", "Overijssel"}},
				{"8", []string{"Overijssel", "Flevoland", "Friesland"}},
				{"9", []string{"Groningen", "Drenthe", "Friesland"}},
			},
		},
	}
}

func unitedKingdomTable() Table {
	one := func(prefixes []string, region string) []PrefixRule {
		rules := make([]PrefixRule, len(prefixes))
		for i, p := range prefixes {
			rules[i] = PrefixRule{Prefix: p, Regions: []string{region}}
		}
		return rules
	}

	englandTwo := []string{
		"BA", "BB", "BD", "BH", "BL", "BN", "BR", "BS", "CA", "CB", "CH", "CM", "CO", "CR",
		"CV", "CW", "DA", "DE", "DH", "DL", "DN", "DT", "DY", "EC", "EN", "EX", "FY", "GL",
		"GU", "HA", "HD", "HG", "HP", "HR", "HU", "HX", "IG", "IP", "KT", "LA", "LE", "LN",
		"LS", "LU", "ME", "MK", "NE", "NG", "NN", "NP", "NR", "NW", "OL", "OX", "PE",
		"PL", "PO", "PR", "RG", "RH", "RM", "SE", "SG", "SK", "SL", "SM", "SN", "SO", "SP",
		"SR", "SS", "ST", "SW", "SY", "TA", "TF", "TN", "TQ", "TR", "TS", "TW", "UB", "WA",
		"WC", "WD", "WF", "WN", "WR", "WS", "WV", "YO",
	}
	scotlandTwo := []string{"AB", "DD", "DG", "EH", "FK", "HS", "IV", "KA", "KW", "KY", "ML", "PA", "PH", "TD", "ZE"}
	walesTwo := []string{"CF", "LD", "LL", "SA"}

	// Two-letter prefixes are listed before one-letter ones so that outward
	// codes like BT resolve against the longer prefix first.
	var prefixes []PrefixRule
	prefixes = append(prefixes, PrefixRule{"BT", []string{"Northern Ireland"}})
	prefixes = append(prefixes, one(englandTwo, "England")...)
	prefixes = append(prefixes, one(scotlandTwo, "Scotland")...)
	prefixes = append(prefixes, one(walesTwo, "Wales")...)
	prefixes = append(prefixes, one([]string{"B", "E", "L", "M", "N", "S", "W"}, "England")...)
	prefixes = append(prefixes, PrefixRule{"G", []string{"Scotland"}})

	return Table{
		Keywords: concat(
			kw("England",
				"london", "manchester", "birmingham", "leeds", "liverpool", "newcastle", "sheffield",
				"bristol", "nottingham", "leicester", "coventry", "bradford", "oxford", "cambridge",
				"norfolk", "suffolk", "essex", "kent", "surrey", "sussex", "hampshire", "dorset",
				"devon", "cornwall", "somerset", "wiltshire", "gloucestershire", "oxfordshire",
				"buckinghamshire", "berkshire", "hertfordshire", "bedfordshire", "cambridgeshire",
				"northamptonshire", "warwickshire", "worcestershire", "herefordshire", "shropshire",
				"staffordshire", "derbyshire", "nottinghamshire", "lincolnshire", "leicestershire",
				"rutland", "northumberland", "durham", "cumbria", "lancashire", "yorkshire", "cheshire"),
			kw("Scotland",
				"edinburgh", "glasgow", "aberdeen", "dundee", "inverness", "stirling", "perth",
				"highlands", "grampian", "strathclyde", "lothian", "borders", "fife", "tayside",
				"aberdeenshire", "angus", "argyll", "ayrshire", "banffshire", "berwickshire",
				"caithness", "clackmannanshire", "dumfriesshire", "dunbartonshire", "east lothian",
				"inverness-shire", "kincardineshire", "kinross-shire", "kirkcudbrightshire",
				"lanarkshire", "midlothian", "moray", "nairnshire", "orkney", "peeblesshire",
				"perthshire", "renfrewshire", "ross-shire", "roxburghshire", "selkirkshire",
				"shetland", "stirlingshire", "sutherland", "west lothian", "wigtownshire"),
			kw("Wales",
				"cardiff", "swansea", "newport", "wrexham", "aberystwyth",
				"anglesey", "brecknockshire", "caernarfonshire", "cardiganshire", "carmarthenshire",
				"denbighshire", "flintshire", "glamorgan", "merionethshire", "monmouthshire",
				"montgomeryshire", "pembrokeshire", "radnorshire", "gwynedd", "clwyd", "dyfed",
				"powys", "gwent", "mid glamorgan", "south glamorgan", "west glamorgan"),
			kw("Northern Ireland",
				"belfast", "derry", "lisburn", "newry", "armagh", "bangor", "antrim", "down",
				"fermanagh", "londonderry", "tyrone", "county antrim", "county armagh", "county down",
				"county fermanagh", "county londonderry", "county tyrone"),
		),
		Postal: &PostalScheme{
			Pattern:   regexp.MustCompile(`(?i)\b([A-Z]{1,2}\d{1,2}[A-Z]?)`),
			PrefixLen: 2,
			Prefixes:  prefixes,
		},
		Fallback: "England",
	}
}

func franceTable() Table {
	deptRegions := map[string][]string{
		"Auvergne-Rhône-Alpes":       {"01", "03", "07", "15", "26", "38", "42", "43", "63", "69", "73", "74"},
		"Bourgogne-Franche-Comté":    {"21", "25", "39", "58", "70", "71", "89", "90"},
		"Bretagne":                   {"22", "29", "35", "56"},
		"Centre-Val de Loire":        {"18", "28", "36", "37", "41", "45"},
		"Corse":                      {"20"},
		"Grand Est":                  {"08", "10", "51", "52", "54", "55", "57", "67", "68", "88"},
		"Hauts-de-France":            {"02", "59", "60", "62", "80"},
		"Île-de-France":              {"75", "77", "78", "91", "92", "93", "94", "95"},
		"Normandie":                  {"14", "27", "50", "61", "76"},
		"Nouvelle-Aquitaine":         {"16", "17", "19", "23", "24", "33", "40", "47", "64", "79", "86", "87"},
		"Occitanie":                  {"09", "11", "12", "30", "31", "32", "34", "46", "48", "65", "66", "81", "82"},
		"Pays de la Loire":           {"44", "49", "53", "72", "85"},
		"Provence-Alpes-Côte d'Azur": {"04", "05", "06", "13", "83", "84"},
	}

	regionOrder := []string{
		"Auvergne-Rhône-Alpes", "Bourgogne-Franche-Comté", "Bretagne",
		"Centre-Val de Loire", "Corse", "Grand Est", "Hauts-de-France",
		"Île-de-France", "Normandie", "Nouvelle-Aquitaine", "Occitanie",
		"Pays de la Loire", "Provence-Alpes-Côte d'Azur",
	}

	var prefixes []PrefixRule
	for _, region := range regionOrder {
		for _, dept := range deptRegions[region] {
			prefixes = append(prefixes, PrefixRule{Prefix: dept, Regions: []string{region}})
		}
	}

	return Table{
		Keywords: concat(
			kw("Auvergne-Rhône-Alpes", "auvergne", "rhône", "rhone", "alpes", "ain", "allier", "ardèche", "ardeche", "cantal", "drôme", "drome", "isère", "isere", "loire", "haute-loire", "puy-de-dôme", "puy de dome", "savoie", "haute-savoie", "lyon", "grenoble", "villeurbanne"),
			kw("Bourgogne-Franche-Comté", "bourgogne", "franche", "comté", "comte", "côte-d'or", "cote d'or", "doubs", "jura", "nièvre", "nievre", "haute-saône", "haute saone", "saône-et-loire", "saone et loire", "yonne", "territoire de belfort", "dijon"),
			kw("Bretagne", "bretagne", "côtes-d'armor", "cotes d'armor", "finistère", "finistere", "ille-et-vilaine", "morbihan", "rennes"),
			kw("Centre-Val de Loire", "centre", "val de loire", "cher", "eure-et-loir", "indre", "indre-et-loire", "loir-et-cher", "loiret"),
			kw("Corse", "corse", "haute-corse", "corse-du-sud"),
			kw("Grand Est", "grand est", "alsace", "champagne", "ardenne", "lorraine", "ardennes", "aube", "marne", "haute-marne", "meurthe-et-moselle", "meuse", "moselle", "bas-rhin", "haut-rhin", "vosges", "strasbourg", "reims"),
			kw("Hauts-de-France", "hauts-de-france", "hauts de france", "aisne", "nord", "oise", "pas-de-calais", "pas de calais", "somme", "lille"),
			kw("Île-de-France", "île-de-france", "ile de france", "paris", "seine-et-marne", "yvelines", "essonne", "hauts-de-seine", "seine-saint-denis", "val-de-marne", "val-d'oise", "val d'oise"),
			kw("Normandie", "normandie", "calvados", "eure", "manche", "orne", "seine-maritime"),
			kw("Nouvelle-Aquitaine", "nouvelle-aquitaine", "nouvelle aquitaine", "charente", "charente-maritime", "corrèze", "correze", "creuse", "dordogne", "gironde", "landes", "lot-et-garonne", "pyrénées-atlantiques", "pyrenees atlantiques", "deux-sèvres", "deux sevres", "vienne", "haute-vienne", "bordeaux"),
			kw("Occitanie", "occitanie", "ariège", "ariege", "aude", "aveyron", "gard", "haute-garonne", "gers", "hérault", "herault", "lot", "lozère", "lozere", "hautes-pyrénées", "hautes pyrenees", "pyrénées-orientales", "pyrenees orientales", "tarn", "tarn-et-garonne", "toulouse", "montpellier", "nîmes"),
			kw("Pays de la Loire", "pays de la loire", "loire-atlantique", "maine-et-loire", "mayenne", "sarthe", "vendée", "vendee", "nantes", "angers"),
			kw("Provence-Alpes-Côte d'Azur", "provence", "côte d'azur", "cote d'azur", "alpes-de-haute-provence", "hautes-alpes", "alpes-maritimes", "bouches-du-rhône", "bouches du rhone", "var", "vaucluse", "marseille", "nice", "toulon"),
		),
		Postal: &PostalScheme{
			Pattern:   regexp.MustCompile(`\b(\d{5})\b`),
			PrefixLen: 2,
			Prefixes:  prefixes,
		},
	}
}

func germanyTable() Table {
	return Table{
		Keywords: concat(
			kw("Baden-Württemberg", "baden-württemberg", "baden-wurttemberg", "baden württemberg", "baden wurttemberg", "stuttgart", "karlsruhe", "freiburg", "tübingen", "tubingen"),
			kw("Bayern", "bayern", "bavaria", "münchen", "munchen", "nürnberg", "nurnberg", "augsburg", "regensburg", "würzburg", "wurzburg", "ingolstadt"),
			kw("Berlin", "berlin"),
			kw("Brandenburg", "brandenburg", "potsdam", "cottbus", "frankfurt an der oder"),
			kw("Bremen", "bremen", "bremerhaven"),
			kw("Hamburg", "hamburg"),
			kw("Hessen", "hessen", "hesse", "wiesbaden", "frankfurt am main", "kassel", "darmstadt"),
			kw("Mecklenburg-Vorpommern", "mecklenburg-vorpommern", "mecklenburg vorpommern", "schwerin", "rostock", "neubrandenburg", "stralsund"),
			kw("Niedersachsen", "niedersachsen", "lower saxony", "hannover", "braunschweig", "osnabrück", "osnabruck", "oldenburg", "göttingen", "gottingen"),
			kw("Nordrhein-Westfalen", "nordrhein-westfalen", "north rhine-westphalia", "düsseldorf", "dusseldorf", "köln", "koln", "cologne", "dortmund", "essen", "duisburg", "bochum", "wuppertal", "bonn", "münster", "munster"),
			kw("Rheinland-Pfalz", "rheinland-pfalz", "rhineland-palatinate", "mainz", "ludwigshafen", "koblenz", "trier", "kaiserslautern"),
			kw("Saarland", "saarland", "saarbrücken", "saarbrucken"),
			kw("Sachsen", "sachsen", "saxony", "dresden", "leipzig", "chemnitz", "zwickau"),
			kw("Sachsen-Anhalt", "sachsen-anhalt", "saxony-anhalt", "magdeburg", "halle", "dessau-roßlau", "dessau-rosslau"),
			kw("Schleswig-Holstein", "schleswig-holstein", "kiel", "lübeck", "lubeck", "flensburg", "neumünster", "neumunster"),
			kw("Thüringen", "thüringen", "thuringen", "thuringia", "erfurt", "jena", "gera", "weimar"),
		),
		Postal: &PostalScheme{
			Pattern:   regexp.MustCompile(`\b(\d{5})\b`),
			PrefixLen: 1,
			Prefixes: []PrefixRule{
				{"0", []string{"Sachsen", "Thüringen", "Sachsen-Anhalt"}},
				{"1", []string{"Berlin", "Brandenburg"}},
				{"2", []string{"Hamburg", "Mecklenburg-Vorpommern", "Schleswig-Holstein"}},
				{"3", []string{"Niedersachsen", "Bremen"}},
				{"4", []string{"Niedersachsen", "Bremen"}},
				{"5", []string{"Nordrhein-Westfalen"}},
				{"6", []string{"Hessen", "Saarland"}},
				{"7", []string{"Baden-Württemberg"}},
				{"8", []string{"Bayern"}},
				{"9", []string{"Bayern"}},
			},
		},
	}
}

func belgiumTable() Table {
	return Table{
		Keywords: concat(
			kw("Flanders",
				"vlaanderen", "flandre", "flanders",
				"antwerpen", "antwerp", "anvers",
				"limburg", "limbourg",
				"oost-vlaanderen", "east flanders", "flandre orientale",
				"west-vlaanderen", "west flanders", "flandre occidentale",
				"vlaams-brabant", "flemish brabant", "brabant flamand",
				"gent", "ghent", "gand",
				"brugge", "bruges", "hasselt", "leuven", "louvain", "mechelen", "malines"),
			kw("Wallonia",
				"wallonie", "wallonia", "wallonië",
				"hainaut", "henegouwen",
				"liège", "luik", "liege",
				"luxembourg", "luxemburg",
				"namur", "namen",
				"brabant wallon", "waals-brabant", "walloon brabant",
				"charleroi", "mons", "bergen"),
			kw("Brussels",
				"brussels", "bruxelles", "brussel",
				"brussels hoofdstedelijk gewest", "région de bruxelles-capitale", "brussels capital region"),
		),
		Postal: &PostalScheme{
			Pattern: regexp.MustCompile(`\b(\d{4})\b`),
			Ranges: []RangeRule{
				{1000, 1299, "Brussels"},
				{1300, 1399, "Flanders"},
				{1400, 1499, "Flanders"},
				{1500, 1999, "Flanders"},
				{3000, 3499, "Flanders"},
				{8000, 9999, "Flanders"},
				{4000, 7999, "Wallonia"},
			},
		},
	}
}
