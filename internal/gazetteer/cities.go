package gazetteer

// cities — статическая таблица городов мира. Строки — данные, не
// логика; индексы поиска строятся по этому срезу при создании.
var cities = []City{
	{Name: "New York City", NameNormalized: "new york city", Lat: 40.7128, Lng: -74.0060, Country: "United States", CountryCode: "US", Population: 8336817, Region: "north-america"},
	{Name: "Los Angeles", NameNormalized: "los angeles", Lat: 34.0522, Lng: -118.2437, Country: "United States", CountryCode: "US", Population: 3979576, Region: "north-america"},
	{Name: "Chicago", NameNormalized: "chicago", Lat: 41.8781, Lng: -87.6298, Country: "United States", CountryCode: "US", Population: 2693976, Region: "north-america"},
	{Name: "Houston", NameNormalized: "houston", Lat: 29.7604, Lng: -95.3698, Country: "United States", CountryCode: "US", Population: 2320268, Region: "north-america"},
	{Name: "Phoenix", NameNormalized: "phoenix", Lat: 33.4484, Lng: -112.0740, Country: "United States", CountryCode: "US", Population: 1680992, Region: "north-america"},
	{Name: "Philadelphia", NameNormalized: "philadelphia", Lat: 39.9526, Lng: -75.1652, Country: "United States", CountryCode: "US", Population: 1584064, Region: "north-america"},
	{Name: "San Antonio", NameNormalized: "san antonio", Lat: 29.4241, Lng: -98.4936, Country: "United States", CountryCode: "US", Population: 1547253, Region: "north-america"},
	{Name: "San Diego", NameNormalized: "san diego", Lat: 32.7157, Lng: -117.1611, Country: "United States", CountryCode: "US", Population: 1423851, Region: "north-america"},
	{Name: "Dallas", NameNormalized: "dallas", Lat: 32.7767, Lng: -96.7970, Country: "United States", CountryCode: "US", Population: 1343573, Region: "north-america"},
	{Name: "San Jose", NameNormalized: "san jose", Lat: 37.3382, Lng: -121.8863, Country: "United States", CountryCode: "US", Population: 1021795, Region: "north-america"},
	{Name: "Austin", NameNormalized: "austin", Lat: 30.2672, Lng: -97.7431, Country: "United States", CountryCode: "US", Population: 978908, Region: "north-america"},
	{Name: "San Francisco", NameNormalized: "san francisco", Lat: 37.7749, Lng: -122.4194, Country: "United States", CountryCode: "US", Population: 873965, Region: "north-america"},
	{Name: "Seattle", NameNormalized: "seattle", Lat: 47.6062, Lng: -122.3321, Country: "United States", CountryCode: "US", Population: 737015, Region: "north-america"},
	{Name: "Denver", NameNormalized: "denver", Lat: 39.7392, Lng: -104.9903, Country: "United States", CountryCode: "US", Population: 727211, Region: "north-america"},
	{Name: "Washington", NameNormalized: "washington", Lat: 38.9072, Lng: -77.0369, Country: "United States", CountryCode: "US", Population: 705749, Region: "north-america", Capital: true},
	{Name: "Boston", NameNormalized: "boston", Lat: 42.3601, Lng: -71.0589, Country: "United States", CountryCode: "US", Population: 692600, Region: "north-america"},
	{Name: "Las Vegas", NameNormalized: "las vegas", Lat: 36.1699, Lng: -115.1398, Country: "United States", CountryCode: "US", Population: 651319, Region: "north-america"},
	{Name: "Portland", NameNormalized: "portland", Lat: 45.5152, Lng: -122.6784, Country: "United States", CountryCode: "US", Population: 654741, Region: "north-america"},
	{Name: "Detroit", NameNormalized: "detroit", Lat: 42.3314, Lng: -83.0458, Country: "United States", CountryCode: "US", Population: 639111, Region: "north-america"},
	{Name: "Miami", NameNormalized: "miami", Lat: 25.7617, Lng: -80.1918, Country: "United States", CountryCode: "US", Population: 467963, Region: "north-america"},
	{Name: "Atlanta", NameNormalized: "atlanta", Lat: 33.7490, Lng: -84.3880, Country: "United States", CountryCode: "US", Population: 498715, Region: "north-america"},
	{Name: "Minneapolis", NameNormalized: "minneapolis", Lat: 44.9778, Lng: -93.2650, Country: "United States", CountryCode: "US", Population: 429954, Region: "north-america"},
	{Name: "New Orleans", NameNormalized: "new orleans", Lat: 29.9511, Lng: -90.0715, Country: "United States", CountryCode: "US", Population: 383997, Region: "north-america"},
	{Name: "Cleveland", NameNormalized: "cleveland", Lat: 41.4993, Lng: -81.6944, Country: "United States", CountryCode: "US", Population: 372624, Region: "north-america"},
	{Name: "Honolulu", NameNormalized: "honolulu", Lat: 21.3069, Lng: -157.8583, Country: "United States", CountryCode: "US", Population: 350964, Region: "north-america"},
	{Name: "Anchorage", NameNormalized: "anchorage", Lat: 61.2181, Lng: -149.9003, Country: "United States", CountryCode: "US", Population: 291247, Region: "north-america"},
	{Name: "Toronto", NameNormalized: "toronto", Lat: 43.6532, Lng: -79.3832, Country: "Canada", CountryCode: "CA", Population: 2731571, Region: "north-america"},
	{Name: "Montreal", NameNormalized: "montreal", Lat: 45.5017, Lng: -73.5673, Country: "Canada", CountryCode: "CA", Population: 1704694, Region: "north-america"},
	{Name: "Vancouver", NameNormalized: "vancouver", Lat: 49.2827, Lng: -123.1207, Country: "Canada", CountryCode: "CA", Population: 631486, Region: "north-america"},
	{Name: "Calgary", NameNormalized: "calgary", Lat: 51.0447, Lng: -114.0719, Country: "Canada", CountryCode: "CA", Population: 1239220, Region: "north-america"},
	{Name: "Edmonton", NameNormalized: "edmonton", Lat: 53.5461, Lng: -113.4938, Country: "Canada", CountryCode: "CA", Population: 932546, Region: "north-america"},
	{Name: "Ottawa", NameNormalized: "ottawa", Lat: 45.4215, Lng: -75.6972, Country: "Canada", CountryCode: "CA", Population: 934243, Region: "north-america", Capital: true},
	{Name: "Winnipeg", NameNormalized: "winnipeg", Lat: 49.8951, Lng: -97.1384, Country: "Canada", CountryCode: "CA", Population: 749534, Region: "north-america"},
	{Name: "Quebec City", NameNormalized: "quebec city", Lat: 46.8139, Lng: -71.2080, Country: "Canada", CountryCode: "CA", Population: 531902, Region: "north-america"},
	{Name: "Halifax", NameNormalized: "halifax", Lat: 44.6488, Lng: -63.5752, Country: "Canada", CountryCode: "CA", Population: 403131, Region: "north-america"},
	{Name: "Mexico City", NameNormalized: "mexico city", Lat: 19.4326, Lng: -99.1332, Country: "Mexico", CountryCode: "MX", Population: 8918653, Region: "north-america", Capital: true},
	{Name: "Guadalajara", NameNormalized: "guadalajara", Lat: 20.6597, Lng: -103.3496, Country: "Mexico", CountryCode: "MX", Population: 1495182, Region: "north-america"},
	{Name: "Monterrey", NameNormalized: "monterrey", Lat: 25.6866, Lng: -100.3161, Country: "Mexico", CountryCode: "MX", Population: 1135512, Region: "north-america"},
	{Name: "Tijuana", NameNormalized: "tijuana", Lat: 32.5149, Lng: -117.0382, Country: "Mexico", CountryCode: "MX", Population: 1300983, Region: "north-america"},
	{Name: "Cancun", NameNormalized: "cancun", Lat: 21.1619, Lng: -86.8515, Country: "Mexico", CountryCode: "MX", Population: 628306, Region: "north-america"},
	{Name: "São Paulo", NameNormalized: "sao paulo", Lat: -23.5505, Lng: -46.6333, Country: "Brazil", CountryCode: "BR", Population: 12325232, Region: "south-america"},
	{Name: "Rio de Janeiro", NameNormalized: "rio de janeiro", Lat: -22.9068, Lng: -43.1729, Country: "Brazil", CountryCode: "BR", Population: 6747815, Region: "south-america"},
	{Name: "Brasília", NameNormalized: "brasilia", Lat: -15.8267, Lng: -47.9218, Country: "Brazil", CountryCode: "BR", Population: 3015268, Region: "south-america", Capital: true},
	{Name: "Salvador", NameNormalized: "salvador", Lat: -12.9714, Lng: -38.5014, Country: "Brazil", CountryCode: "BR", Population: 2886698, Region: "south-america"},
	{Name: "Fortaleza", NameNormalized: "fortaleza", Lat: -3.7172, Lng: -38.5433, Country: "Brazil", CountryCode: "BR", Population: 2686612, Region: "south-america"},
	{Name: "Belo Horizonte", NameNormalized: "belo horizonte", Lat: -19.9167, Lng: -43.9345, Country: "Brazil", CountryCode: "BR", Population: 2521564, Region: "south-america"},
	{Name: "Manaus", NameNormalized: "manaus", Lat: -3.1190, Lng: -60.0217, Country: "Brazil", CountryCode: "BR", Population: 2219580, Region: "south-america"},
	{Name: "Curitiba", NameNormalized: "curitiba", Lat: -25.4290, Lng: -49.2671, Country: "Brazil", CountryCode: "BR", Population: 1948626, Region: "south-america"},
	{Name: "Recife", NameNormalized: "recife", Lat: -8.0476, Lng: -34.8770, Country: "Brazil", CountryCode: "BR", Population: 1653461, Region: "south-america"},
	{Name: "Porto Alegre", NameNormalized: "porto alegre", Lat: -30.0346, Lng: -51.2177, Country: "Brazil", CountryCode: "BR", Population: 1488252, Region: "south-america"},
	{Name: "Buenos Aires", NameNormalized: "buenos aires", Lat: -34.6037, Lng: -58.3816, Country: "Argentina", CountryCode: "AR", Population: 3075646, Region: "south-america", Capital: true},
	{Name: "Córdoba", NameNormalized: "cordoba", Lat: -31.4201, Lng: -64.1888, Country: "Argentina", CountryCode: "AR", Population: 1391000, Region: "south-america"},
	{Name: "Rosario", NameNormalized: "rosario", Lat: -32.9587, Lng: -60.6930, Country: "Argentina", CountryCode: "AR", Population: 1193605, Region: "south-america"},
	{Name: "Mendoza", NameNormalized: "mendoza", Lat: -32.8908, Lng: -68.8272, Country: "Argentina", CountryCode: "AR", Population: 115041, Region: "south-america"},
	{Name: "Bogotá", NameNormalized: "bogota", Lat: 4.7110, Lng: -74.0721, Country: "Colombia", CountryCode: "CO", Population: 7181469, Region: "south-america", Capital: true},
	{Name: "Medellín", NameNormalized: "medellin", Lat: 6.2442, Lng: -75.5812, Country: "Colombia", CountryCode: "CO", Population: 2569007, Region: "south-america"},
	{Name: "Cali", NameNormalized: "cali", Lat: 3.4516, Lng: -76.5320, Country: "Colombia", CountryCode: "CO", Population: 2227642, Region: "south-america"},
	{Name: "Barranquilla", NameNormalized: "barranquilla", Lat: 10.9685, Lng: -74.7813, Country: "Colombia", CountryCode: "CO", Population: 1232766, Region: "south-america"},
	{Name: "Cartagena", NameNormalized: "cartagena", Lat: 10.3910, Lng: -75.4794, Country: "Colombia", CountryCode: "CO", Population: 1028736, Region: "south-america"},
	{Name: "Lima", NameNormalized: "lima", Lat: -12.0464, Lng: -77.0428, Country: "Peru", CountryCode: "PE", Population: 10883574, Region: "south-america", Capital: true},
	{Name: "Arequipa", NameNormalized: "arequipa", Lat: -16.4090, Lng: -71.5375, Country: "Peru", CountryCode: "PE", Population: 1008290, Region: "south-america"},
	{Name: "Cusco", NameNormalized: "cusco", Lat: -13.5319, Lng: -71.9675, Country: "Peru", CountryCode: "PE", Population: 428450, Region: "south-america"},
	{Name: "Santiago", NameNormalized: "santiago", Lat: -33.4489, Lng: -70.6693, Country: "Chile", CountryCode: "CL", Population: 6158080, Region: "south-america", Capital: true},
	{Name: "Valparaíso", NameNormalized: "valparaiso", Lat: -33.0472, Lng: -71.6127, Country: "Chile", CountryCode: "CL", Population: 284630, Region: "south-america"},
	{Name: "Caracas", NameNormalized: "caracas", Lat: 10.4806, Lng: -66.9036, Country: "Venezuela", CountryCode: "VE", Population: 2082000, Region: "south-america", Capital: true},
	{Name: "Maracaibo", NameNormalized: "maracaibo", Lat: 10.6544, Lng: -71.6406, Country: "Venezuela", CountryCode: "VE", Population: 1653211, Region: "south-america"},
	{Name: "Quito", NameNormalized: "quito", Lat: -0.1807, Lng: -78.4678, Country: "Ecuador", CountryCode: "EC", Population: 2781641, Region: "south-america", Capital: true},
	{Name: "Guayaquil", NameNormalized: "guayaquil", Lat: -2.1894, Lng: -79.8891, Country: "Ecuador", CountryCode: "EC", Population: 2698077, Region: "south-america"},
	{Name: "Montevideo", NameNormalized: "montevideo", Lat: -34.9011, Lng: -56.1645, Country: "Uruguay", CountryCode: "UY", Population: 1319108, Region: "south-america", Capital: true},
	{Name: "Asunción", NameNormalized: "asuncion", Lat: -25.2637, Lng: -57.5759, Country: "Paraguay", CountryCode: "PY", Population: 525294, Region: "south-america", Capital: true},
	{Name: "La Paz", NameNormalized: "la paz", Lat: -16.4897, Lng: -68.1193, Country: "Bolivia", CountryCode: "BO", Population: 764617, Region: "south-america", Capital: true},
	{Name: "London", NameNormalized: "london", Lat: 51.5074, Lng: -0.1278, Country: "United Kingdom", CountryCode: "GB", Population: 8982000, Region: "europe", Capital: true},
	{Name: "Birmingham", NameNormalized: "birmingham", Lat: 52.4862, Lng: -1.8904, Country: "United Kingdom", CountryCode: "GB", Population: 1141816, Region: "europe"},
	{Name: "Manchester", NameNormalized: "manchester", Lat: 53.4808, Lng: -2.2426, Country: "United Kingdom", CountryCode: "GB", Population: 553230, Region: "europe"},
	{Name: "Liverpool", NameNormalized: "liverpool", Lat: 53.4084, Lng: -2.9916, Country: "United Kingdom", CountryCode: "GB", Population: 498042, Region: "europe"},
	{Name: "Edinburgh", NameNormalized: "edinburgh", Lat: 55.9533, Lng: -3.1883, Country: "United Kingdom", CountryCode: "GB", Population: 488050, Region: "europe"},
	{Name: "Glasgow", NameNormalized: "glasgow", Lat: 55.8642, Lng: -4.2518, Country: "United Kingdom", CountryCode: "GB", Population: 635640, Region: "europe"},
	{Name: "Belfast", NameNormalized: "belfast", Lat: 54.5973, Lng: -5.9301, Country: "United Kingdom", CountryCode: "GB", Population: 343542, Region: "europe"},
	{Name: "Cardiff", NameNormalized: "cardiff", Lat: 51.4816, Lng: -3.1791, Country: "United Kingdom", CountryCode: "GB", Population: 362756, Region: "europe"},
	{Name: "Paris", NameNormalized: "paris", Lat: 48.8566, Lng: 2.3522, Country: "France", CountryCode: "FR", Population: 2161000, Region: "europe", Capital: true},
	{Name: "Marseille", NameNormalized: "marseille", Lat: 43.2965, Lng: 5.3698, Country: "France", CountryCode: "FR", Population: 870731, Region: "europe"},
	{Name: "Lyon", NameNormalized: "lyon", Lat: 45.7640, Lng: 4.8357, Country: "France", CountryCode: "FR", Population: 516092, Region: "europe"},
	{Name: "Toulouse", NameNormalized: "toulouse", Lat: 43.6047, Lng: 1.4442, Country: "France", CountryCode: "FR", Population: 479553, Region: "europe"},
	{Name: "Nice", NameNormalized: "nice", Lat: 43.7102, Lng: 7.2620, Country: "France", CountryCode: "FR", Population: 342669, Region: "europe"},
	{Name: "Bordeaux", NameNormalized: "bordeaux", Lat: 44.8378, Lng: -0.5792, Country: "France", CountryCode: "FR", Population: 257068, Region: "europe"},
	{Name: "Strasbourg", NameNormalized: "strasbourg", Lat: 48.5734, Lng: 7.7521, Country: "France", CountryCode: "FR", Population: 280966, Region: "europe"},
	{Name: "Berlin", NameNormalized: "berlin", Lat: 52.5200, Lng: 13.4050, Country: "Germany", CountryCode: "DE", Population: 3644826, Region: "europe", Capital: true},
	{Name: "Hamburg", NameNormalized: "hamburg", Lat: 53.5511, Lng: 9.9937, Country: "Germany", CountryCode: "DE", Population: 1899160, Region: "europe"},
	{Name: "Munich", NameNormalized: "munich", Lat: 48.1351, Lng: 11.5820, Country: "Germany", CountryCode: "DE", Population: 1471508, Region: "europe"},
	{Name: "Cologne", NameNormalized: "cologne", Lat: 50.9375, Lng: 6.9603, Country: "Germany", CountryCode: "DE", Population: 1085664, Region: "europe"},
	{Name: "Frankfurt", NameNormalized: "frankfurt", Lat: 50.1109, Lng: 8.6821, Country: "Germany", CountryCode: "DE", Population: 753056, Region: "europe"},
	{Name: "Stuttgart", NameNormalized: "stuttgart", Lat: 48.7758, Lng: 9.1829, Country: "Germany", CountryCode: "DE", Population: 634830, Region: "europe"},
	{Name: "Düsseldorf", NameNormalized: "dusseldorf", Lat: 51.2277, Lng: 6.7735, Country: "Germany", CountryCode: "DE", Population: 619294, Region: "europe"},
	{Name: "Leipzig", NameNormalized: "leipzig", Lat: 51.3397, Lng: 12.3731, Country: "Germany", CountryCode: "DE", Population: 587857, Region: "europe"},
	{Name: "Dresden", NameNormalized: "dresden", Lat: 51.0504, Lng: 13.7373, Country: "Germany", CountryCode: "DE", Population: 556780, Region: "europe"},
	{Name: "Rome", NameNormalized: "rome", Lat: 41.9028, Lng: 12.4964, Country: "Italy", CountryCode: "IT", Population: 2873000, Region: "europe", Capital: true},
	{Name: "Milan", NameNormalized: "milan", Lat: 45.4642, Lng: 9.1900, Country: "Italy", CountryCode: "IT", Population: 1396059, Region: "europe"},
	{Name: "Naples", NameNormalized: "naples", Lat: 40.8518, Lng: 14.2681, Country: "Italy", CountryCode: "IT", Population: 966144, Region: "europe"},
	{Name: "Turin", NameNormalized: "turin", Lat: 45.0703, Lng: 7.6869, Country: "Italy", CountryCode: "IT", Population: 870952, Region: "europe"},
	{Name: "Florence", NameNormalized: "florence", Lat: 43.7696, Lng: 11.2558, Country: "Italy", CountryCode: "IT", Population: 383084, Region: "europe"},
	{Name: "Venice", NameNormalized: "venice", Lat: 45.4408, Lng: 12.3155, Country: "Italy", CountryCode: "IT", Population: 261905, Region: "europe"},
	{Name: "Bologna", NameNormalized: "bologna", Lat: 44.4949, Lng: 11.3426, Country: "Italy", CountryCode: "IT", Population: 392203, Region: "europe"},
	{Name: "Madrid", NameNormalized: "madrid", Lat: 40.4168, Lng: -3.7038, Country: "Spain", CountryCode: "ES", Population: 3223334, Region: "europe", Capital: true},
	{Name: "Barcelona", NameNormalized: "barcelona", Lat: 41.3851, Lng: 2.1734, Country: "Spain", CountryCode: "ES", Population: 1620343, Region: "europe"},
	{Name: "Valencia", NameNormalized: "valencia", Lat: 39.4699, Lng: -0.3763, Country: "Spain", CountryCode: "ES", Population: 791413, Region: "europe"},
	{Name: "Seville", NameNormalized: "seville", Lat: 37.3891, Lng: -5.9845, Country: "Spain", CountryCode: "ES", Population: 688592, Region: "europe"},
	{Name: "Bilbao", NameNormalized: "bilbao", Lat: 43.2630, Lng: -2.9350, Country: "Spain", CountryCode: "ES", Population: 346843, Region: "europe"},
	{Name: "Malaga", NameNormalized: "malaga", Lat: 36.7213, Lng: -4.4214, Country: "Spain", CountryCode: "ES", Population: 578460, Region: "europe"},
	{Name: "Amsterdam", NameNormalized: "amsterdam", Lat: 52.3676, Lng: 4.9041, Country: "Netherlands", CountryCode: "NL", Population: 872680, Region: "europe", Capital: true},
	{Name: "Rotterdam", NameNormalized: "rotterdam", Lat: 51.9244, Lng: 4.4777, Country: "Netherlands", CountryCode: "NL", Population: 651446, Region: "europe"},
	{Name: "The Hague", NameNormalized: "the hague", Lat: 52.0705, Lng: 4.3007, Country: "Netherlands", CountryCode: "NL", Population: 545163, Region: "europe"},
	{Name: "Utrecht", NameNormalized: "utrecht", Lat: 52.0907, Lng: 5.1214, Country: "Netherlands", CountryCode: "NL", Population: 357179, Region: "europe"},
	{Name: "Brussels", NameNormalized: "brussels", Lat: 50.8503, Lng: 4.3517, Country: "Belgium", CountryCode: "BE", Population: 1209000, Region: "europe", Capital: true},
	{Name: "Antwerp", NameNormalized: "antwerp", Lat: 51.2194, Lng: 4.4025, Country: "Belgium", CountryCode: "BE", Population: 523248, Region: "europe"},
	{Name: "Ghent", NameNormalized: "ghent", Lat: 51.0543, Lng: 3.7174, Country: "Belgium", CountryCode: "BE", Population: 262219, Region: "europe"},
	{Name: "Zurich", NameNormalized: "zurich", Lat: 47.3769, Lng: 8.5417, Country: "Switzerland", CountryCode: "CH", Population: 415367, Region: "europe"},
	{Name: "Geneva", NameNormalized: "geneva", Lat: 46.2044, Lng: 6.1432, Country: "Switzerland", CountryCode: "CH", Population: 201818, Region: "europe"},
	{Name: "Bern", NameNormalized: "bern", Lat: 46.9480, Lng: 7.4474, Country: "Switzerland", CountryCode: "CH", Population: 133883, Region: "europe", Capital: true},
	{Name: "Basel", NameNormalized: "basel", Lat: 47.5596, Lng: 7.5886, Country: "Switzerland", CountryCode: "CH", Population: 177654, Region: "europe"},
	{Name: "Vienna", NameNormalized: "vienna", Lat: 48.2082, Lng: 16.3738, Country: "Austria", CountryCode: "AT", Population: 1911191, Region: "europe", Capital: true},
	{Name: "Salzburg", NameNormalized: "salzburg", Lat: 47.8095, Lng: 13.0550, Country: "Austria", CountryCode: "AT", Population: 155021, Region: "europe"},
	{Name: "Innsbruck", NameNormalized: "innsbruck", Lat: 47.2692, Lng: 11.4041, Country: "Austria", CountryCode: "AT", Population: 132493, Region: "europe"},
	{Name: "Warsaw", NameNormalized: "warsaw", Lat: 52.2297, Lng: 21.0122, Country: "Poland", CountryCode: "PL", Population: 1793579, Region: "europe", Capital: true},
	{Name: "Krakow", NameNormalized: "krakow", Lat: 50.0647, Lng: 19.9450, Country: "Poland", CountryCode: "PL", Population: 779115, Region: "europe"},
	{Name: "Gdansk", NameNormalized: "gdansk", Lat: 54.3520, Lng: 18.6466, Country: "Poland", CountryCode: "PL", Population: 470907, Region: "europe"},
	{Name: "Wroclaw", NameNormalized: "wroclaw", Lat: 51.1079, Lng: 17.0385, Country: "Poland", CountryCode: "PL", Population: 641607, Region: "europe"},
	{Name: "Poznan", NameNormalized: "poznan", Lat: 52.4064, Lng: 16.9252, Country: "Poland", CountryCode: "PL", Population: 538633, Region: "europe"},
	{Name: "Prague", NameNormalized: "prague", Lat: 50.0755, Lng: 14.4378, Country: "Czech Republic", CountryCode: "CZ", Population: 1335084, Region: "europe", Capital: true},
	{Name: "Brno", NameNormalized: "brno", Lat: 49.1951, Lng: 16.6068, Country: "Czech Republic", CountryCode: "CZ", Population: 381346, Region: "europe"},
	{Name: "Lisbon", NameNormalized: "lisbon", Lat: 38.7223, Lng: -9.1393, Country: "Portugal", CountryCode: "PT", Population: 504718, Region: "europe", Capital: true},
	{Name: "Porto", NameNormalized: "porto", Lat: 41.1579, Lng: -8.6291, Country: "Portugal", CountryCode: "PT", Population: 214349, Region: "europe"},
	{Name: "Athens", NameNormalized: "athens", Lat: 37.9838, Lng: 23.7275, Country: "Greece", CountryCode: "GR", Population: 664046, Region: "europe", Capital: true},
	{Name: "Thessaloniki", NameNormalized: "thessaloniki", Lat: 40.6401, Lng: 22.9444, Country: "Greece", CountryCode: "GR", Population: 325182, Region: "europe"},
	{Name: "Stockholm", NameNormalized: "stockholm", Lat: 59.3293, Lng: 18.0686, Country: "Sweden", CountryCode: "SE", Population: 975551, Region: "europe", Capital: true},
	{Name: "Gothenburg", NameNormalized: "gothenburg", Lat: 57.7089, Lng: 11.9746, Country: "Sweden", CountryCode: "SE", Population: 583056, Region: "europe"},
	{Name: "Malmo", NameNormalized: "malmo", Lat: 55.6050, Lng: 13.0038, Country: "Sweden", CountryCode: "SE", Population: 347949, Region: "europe"},
	{Name: "Copenhagen", NameNormalized: "copenhagen", Lat: 55.6761, Lng: 12.5683, Country: "Denmark", CountryCode: "DK", Population: 644431, Region: "europe", Capital: true},
	{Name: "Oslo", NameNormalized: "oslo", Lat: 59.9139, Lng: 10.7522, Country: "Norway", CountryCode: "NO", Population: 693494, Region: "europe", Capital: true},
	{Name: "Bergen", NameNormalized: "bergen", Lat: 60.3913, Lng: 5.3221, Country: "Norway", CountryCode: "NO", Population: 283929, Region: "europe"},
	{Name: "Helsinki", NameNormalized: "helsinki", Lat: 60.1699, Lng: 24.9384, Country: "Finland", CountryCode: "FI", Population: 658864, Region: "europe", Capital: true},
	{Name: "Reykjavik", NameNormalized: "reykjavik", Lat: 64.1466, Lng: -21.9426, Country: "Iceland", CountryCode: "IS", Population: 131136, Region: "europe", Capital: true},
	{Name: "Moscow", NameNormalized: "moscow", Lat: 55.7558, Lng: 37.6173, Country: "Russia", CountryCode: "RU", Population: 12506468, Region: "europe", Capital: true},
	{Name: "Saint Petersburg", NameNormalized: "saint petersburg", Lat: 59.9343, Lng: 30.3351, Country: "Russia", CountryCode: "RU", Population: 5383890, Region: "europe"},
	{Name: "Kyiv", NameNormalized: "kyiv", Lat: 50.4501, Lng: 30.5234, Country: "Ukraine", CountryCode: "UA", Population: 2962180, Region: "europe", Capital: true},
	{Name: "Kharkiv", NameNormalized: "kharkiv", Lat: 49.9935, Lng: 36.2304, Country: "Ukraine", CountryCode: "UA", Population: 1433886, Region: "europe"},
	{Name: "Odessa", NameNormalized: "odessa", Lat: 46.4825, Lng: 30.7233, Country: "Ukraine", CountryCode: "UA", Population: 1015826, Region: "europe"},
	{Name: "Budapest", NameNormalized: "budapest", Lat: 47.4979, Lng: 19.0402, Country: "Hungary", CountryCode: "HU", Population: 1752286, Region: "europe", Capital: true},
	{Name: "Bucharest", NameNormalized: "bucharest", Lat: 44.4268, Lng: 26.1025, Country: "Romania", CountryCode: "RO", Population: 1883425, Region: "europe", Capital: true},
	{Name: "Sofia", NameNormalized: "sofia", Lat: 42.6977, Lng: 23.3219, Country: "Bulgaria", CountryCode: "BG", Population: 1307439, Region: "europe", Capital: true},
	{Name: "Belgrade", NameNormalized: "belgrade", Lat: 44.7866, Lng: 20.4489, Country: "Serbia", CountryCode: "RS", Population: 1166763, Region: "europe", Capital: true},
	{Name: "Zagreb", NameNormalized: "zagreb", Lat: 45.8150, Lng: 15.9819, Country: "Croatia", CountryCode: "HR", Population: 688163, Region: "europe", Capital: true},
	{Name: "Bratislava", NameNormalized: "bratislava", Lat: 48.1486, Lng: 17.1077, Country: "Slovakia", CountryCode: "SK", Population: 437725, Region: "europe", Capital: true},
	{Name: "Ljubljana", NameNormalized: "ljubljana", Lat: 46.0569, Lng: 14.5058, Country: "Slovenia", CountryCode: "SI", Population: 295504, Region: "europe", Capital: true},
	{Name: "Sarajevo", NameNormalized: "sarajevo", Lat: 43.8563, Lng: 18.4131, Country: "Bosnia and Herzegovina", CountryCode: "BA", Population: 275524, Region: "europe", Capital: true},
	{Name: "Tirana", NameNormalized: "tirana", Lat: 41.3275, Lng: 19.8187, Country: "Albania", CountryCode: "AL", Population: 418495, Region: "europe", Capital: true},
	{Name: "Skopje", NameNormalized: "skopje", Lat: 41.9981, Lng: 21.4254, Country: "North Macedonia", CountryCode: "MK", Population: 544086, Region: "europe", Capital: true},
	{Name: "Minsk", NameNormalized: "minsk", Lat: 53.9006, Lng: 27.5590, Country: "Belarus", CountryCode: "BY", Population: 2009786, Region: "europe", Capital: true},
	{Name: "Vilnius", NameNormalized: "vilnius", Lat: 54.6872, Lng: 25.2797, Country: "Lithuania", CountryCode: "LT", Population: 580020, Region: "europe", Capital: true},
	{Name: "Riga", NameNormalized: "riga", Lat: 56.9496, Lng: 24.1052, Country: "Latvia", CountryCode: "LV", Population: 614618, Region: "europe", Capital: true},
	{Name: "Tallinn", NameNormalized: "tallinn", Lat: 59.4370, Lng: 24.7536, Country: "Estonia", CountryCode: "EE", Population: 437619, Region: "europe", Capital: true},
	{Name: "Dublin", NameNormalized: "dublin", Lat: 53.3498, Lng: -6.2603, Country: "Ireland", CountryCode: "IE", Population: 544107, Region: "europe", Capital: true},
	{Name: "Cork", NameNormalized: "cork", Lat: 51.8969, Lng: -8.4863, Country: "Ireland", CountryCode: "IE", Population: 210000, Region: "europe"},
	{Name: "Beijing", NameNormalized: "beijing", Lat: 39.9042, Lng: 116.4074, Country: "China", CountryCode: "CN", Population: 21542000, Region: "asia", Capital: true},
	{Name: "Shanghai", NameNormalized: "shanghai", Lat: 31.2304, Lng: 121.4737, Country: "China", CountryCode: "CN", Population: 27058000, Region: "asia"},
	{Name: "Guangzhou", NameNormalized: "guangzhou", Lat: 23.1291, Lng: 113.2644, Country: "China", CountryCode: "CN", Population: 14904000, Region: "asia"},
	{Name: "Shenzhen", NameNormalized: "shenzhen", Lat: 22.5431, Lng: 114.0579, Country: "China", CountryCode: "CN", Population: 12528300, Region: "asia"},
	{Name: "Chengdu", NameNormalized: "chengdu", Lat: 30.5728, Lng: 104.0668, Country: "China", CountryCode: "CN", Population: 10152632, Region: "asia"},
	{Name: "Hong Kong", NameNormalized: "hong kong", Lat: 22.3193, Lng: 114.1694, Country: "China", CountryCode: "HK", Population: 7500700, Region: "asia"},
	{Name: "Wuhan", NameNormalized: "wuhan", Lat: 30.5928, Lng: 114.3055, Country: "China", CountryCode: "CN", Population: 11081000, Region: "asia"},
	{Name: "Chongqing", NameNormalized: "chongqing", Lat: 29.4316, Lng: 106.9123, Country: "China", CountryCode: "CN", Population: 15872000, Region: "asia"},
	{Name: "Xi'an", NameNormalized: "xian", Lat: 34.3416, Lng: 108.9398, Country: "China", CountryCode: "CN", Population: 8705600, Region: "asia"},
	{Name: "Hangzhou", NameNormalized: "hangzhou", Lat: 30.2741, Lng: 120.1551, Country: "China", CountryCode: "CN", Population: 10360000, Region: "asia"},
	{Name: "Nanjing", NameNormalized: "nanjing", Lat: 32.0603, Lng: 118.7969, Country: "China", CountryCode: "CN", Population: 8505500, Region: "asia"},
	{Name: "Tianjin", NameNormalized: "tianjin", Lat: 39.1422, Lng: 117.1767, Country: "China", CountryCode: "CN", Population: 13866000, Region: "asia"},
	{Name: "Tokyo", NameNormalized: "tokyo", Lat: 35.6762, Lng: 139.6503, Country: "Japan", CountryCode: "JP", Population: 13960000, Region: "asia", Capital: true},
	{Name: "Osaka", NameNormalized: "osaka", Lat: 34.6937, Lng: 135.5023, Country: "Japan", CountryCode: "JP", Population: 2750995, Region: "asia"},
	{Name: "Yokohama", NameNormalized: "yokohama", Lat: 35.4437, Lng: 139.6380, Country: "Japan", CountryCode: "JP", Population: 3749929, Region: "asia"},
	{Name: "Nagoya", NameNormalized: "nagoya", Lat: 35.1815, Lng: 136.9066, Country: "Japan", CountryCode: "JP", Population: 2320361, Region: "asia"},
	{Name: "Sapporo", NameNormalized: "sapporo", Lat: 43.0618, Lng: 141.3545, Country: "Japan", CountryCode: "JP", Population: 1970000, Region: "asia"},
	{Name: "Kyoto", NameNormalized: "kyoto", Lat: 35.0116, Lng: 135.7681, Country: "Japan", CountryCode: "JP", Population: 1475183, Region: "asia"},
	{Name: "Fukuoka", NameNormalized: "fukuoka", Lat: 33.5904, Lng: 130.4017, Country: "Japan", CountryCode: "JP", Population: 1581527, Region: "asia"},
	{Name: "Hiroshima", NameNormalized: "hiroshima", Lat: 34.3853, Lng: 132.4553, Country: "Japan", CountryCode: "JP", Population: 1196274, Region: "asia"},
	{Name: "Seoul", NameNormalized: "seoul", Lat: 37.5665, Lng: 126.9780, Country: "South Korea", CountryCode: "KR", Population: 9733509, Region: "asia", Capital: true},
	{Name: "Busan", NameNormalized: "busan", Lat: 35.1796, Lng: 129.0756, Country: "South Korea", CountryCode: "KR", Population: 3448737, Region: "asia"},
	{Name: "Incheon", NameNormalized: "incheon", Lat: 37.4563, Lng: 126.7052, Country: "South Korea", CountryCode: "KR", Population: 2957026, Region: "asia"},
	{Name: "Daegu", NameNormalized: "daegu", Lat: 35.8714, Lng: 128.6014, Country: "South Korea", CountryCode: "KR", Population: 2438031, Region: "asia"},
	{Name: "Pyongyang", NameNormalized: "pyongyang", Lat: 39.0392, Lng: 125.7625, Country: "North Korea", CountryCode: "KP", Population: 3255288, Region: "asia", Capital: true},
	{Name: "Taipei", NameNormalized: "taipei", Lat: 25.0330, Lng: 121.5654, Country: "Taiwan", CountryCode: "TW", Population: 2602418, Region: "asia", Capital: true},
	{Name: "Kaohsiung", NameNormalized: "kaohsiung", Lat: 22.6273, Lng: 120.3014, Country: "Taiwan", CountryCode: "TW", Population: 2777873, Region: "asia"},
	{Name: "New Delhi", NameNormalized: "new delhi", Lat: 28.6139, Lng: 77.2090, Country: "India", CountryCode: "IN", Population: 16787941, Region: "asia", Capital: true},
	{Name: "Mumbai", NameNormalized: "mumbai", Lat: 19.0760, Lng: 72.8777, Country: "India", CountryCode: "IN", Population: 20411274, Region: "asia"},
	{Name: "Bangalore", NameNormalized: "bangalore", Lat: 12.9716, Lng: 77.5946, Country: "India", CountryCode: "IN", Population: 12765000, Region: "asia"},
	{Name: "Kolkata", NameNormalized: "kolkata", Lat: 22.5726, Lng: 88.3639, Country: "India", CountryCode: "IN", Population: 14850066, Region: "asia"},
	{Name: "Chennai", NameNormalized: "chennai", Lat: 13.0827, Lng: 80.2707, Country: "India", CountryCode: "IN", Population: 10971108, Region: "asia"},
	{Name: "Hyderabad", NameNormalized: "hyderabad", Lat: 17.3850, Lng: 78.4867, Country: "India", CountryCode: "IN", Population: 10268653, Region: "asia"},
	{Name: "Ahmedabad", NameNormalized: "ahmedabad", Lat: 23.0225, Lng: 72.5714, Country: "India", CountryCode: "IN", Population: 8059441, Region: "asia"},
	{Name: "Pune", NameNormalized: "pune", Lat: 18.5204, Lng: 73.8567, Country: "India", CountryCode: "IN", Population: 6629347, Region: "asia"},
	{Name: "Jaipur", NameNormalized: "jaipur", Lat: 26.9124, Lng: 75.7873, Country: "India", CountryCode: "IN", Population: 3073350, Region: "asia"},
	{Name: "Karachi", NameNormalized: "karachi", Lat: 24.8607, Lng: 67.0011, Country: "Pakistan", CountryCode: "PK", Population: 14910352, Region: "asia"},
	{Name: "Lahore", NameNormalized: "lahore", Lat: 31.5497, Lng: 74.3436, Country: "Pakistan", CountryCode: "PK", Population: 11126285, Region: "asia"},
	{Name: "Islamabad", NameNormalized: "islamabad", Lat: 33.6844, Lng: 73.0479, Country: "Pakistan", CountryCode: "PK", Population: 1014825, Region: "asia", Capital: true},
	{Name: "Dhaka", NameNormalized: "dhaka", Lat: 23.8103, Lng: 90.4125, Country: "Bangladesh", CountryCode: "BD", Population: 21741090, Region: "asia", Capital: true},
	{Name: "Chittagong", NameNormalized: "chittagong", Lat: 22.3569, Lng: 91.7832, Country: "Bangladesh", CountryCode: "BD", Population: 4009423, Region: "asia"},
	{Name: "Bangkok", NameNormalized: "bangkok", Lat: 13.7563, Lng: 100.5018, Country: "Thailand", CountryCode: "TH", Population: 10539000, Region: "asia", Capital: true},
	{Name: "Ho Chi Minh City", NameNormalized: "ho chi minh city", Lat: 10.8231, Lng: 106.6297, Country: "Vietnam", CountryCode: "VN", Population: 8993082, Region: "asia"},
	{Name: "Hanoi", NameNormalized: "hanoi", Lat: 21.0278, Lng: 105.8342, Country: "Vietnam", CountryCode: "VN", Population: 8053663, Region: "asia", Capital: true},
	{Name: "Singapore", NameNormalized: "singapore", Lat: 1.3521, Lng: 103.8198, Country: "Singapore", CountryCode: "SG", Population: 5685807, Region: "asia", Capital: true},
	{Name: "Kuala Lumpur", NameNormalized: "kuala lumpur", Lat: 3.1390, Lng: 101.6869, Country: "Malaysia", CountryCode: "MY", Population: 1982112, Region: "asia", Capital: true},
	{Name: "Jakarta", NameNormalized: "jakarta", Lat: -6.2088, Lng: 106.8456, Country: "Indonesia", CountryCode: "ID", Population: 10562088, Region: "asia", Capital: true},
	{Name: "Manila", NameNormalized: "manila", Lat: 14.5995, Lng: 120.9842, Country: "Philippines", CountryCode: "PH", Population: 1846513, Region: "asia", Capital: true},
	{Name: "Phnom Penh", NameNormalized: "phnom penh", Lat: 11.5564, Lng: 104.9282, Country: "Cambodia", CountryCode: "KH", Population: 2129371, Region: "asia", Capital: true},
	{Name: "Yangon", NameNormalized: "yangon", Lat: 16.8661, Lng: 96.1951, Country: "Myanmar", CountryCode: "MM", Population: 5160512, Region: "asia"},
	{Name: "Vientiane", NameNormalized: "vientiane", Lat: 17.9757, Lng: 102.6331, Country: "Laos", CountryCode: "LA", Population: 948477, Region: "asia", Capital: true},
	{Name: "Dubai", NameNormalized: "dubai", Lat: 25.2048, Lng: 55.2708, Country: "United Arab Emirates", CountryCode: "AE", Population: 3331420, Region: "middle-east"},
	{Name: "Abu Dhabi", NameNormalized: "abu dhabi", Lat: 24.4539, Lng: 54.3773, Country: "United Arab Emirates", CountryCode: "AE", Population: 1483000, Region: "middle-east", Capital: true},
	{Name: "Riyadh", NameNormalized: "riyadh", Lat: 24.7136, Lng: 46.6753, Country: "Saudi Arabia", CountryCode: "SA", Population: 7676654, Region: "middle-east", Capital: true},
	{Name: "Jeddah", NameNormalized: "jeddah", Lat: 21.2854, Lng: 39.2376, Country: "Saudi Arabia", CountryCode: "SA", Population: 4076000, Region: "middle-east"},
	{Name: "Mecca", NameNormalized: "mecca", Lat: 21.3891, Lng: 39.8579, Country: "Saudi Arabia", CountryCode: "SA", Population: 2042000, Region: "middle-east"},
	{Name: "Tel Aviv", NameNormalized: "tel aviv", Lat: 32.0853, Lng: 34.7818, Country: "Israel", CountryCode: "IL", Population: 460613, Region: "middle-east"},
	{Name: "Jerusalem", NameNormalized: "jerusalem", Lat: 31.7683, Lng: 35.2137, Country: "Israel", CountryCode: "IL", Population: 936425, Region: "middle-east", Capital: true},
	{Name: "Tehran", NameNormalized: "tehran", Lat: 35.6892, Lng: 51.3890, Country: "Iran", CountryCode: "IR", Population: 8846782, Region: "middle-east", Capital: true},
	{Name: "Baghdad", NameNormalized: "baghdad", Lat: 33.3152, Lng: 44.3661, Country: "Iraq", CountryCode: "IQ", Population: 7216040, Region: "middle-east", Capital: true},
	{Name: "Beirut", NameNormalized: "beirut", Lat: 33.8938, Lng: 35.5018, Country: "Lebanon", CountryCode: "LB", Population: 2226000, Region: "middle-east", Capital: true},
	{Name: "Amman", NameNormalized: "amman", Lat: 31.9454, Lng: 35.9284, Country: "Jordan", CountryCode: "JO", Population: 4007526, Region: "middle-east", Capital: true},
	{Name: "Damascus", NameNormalized: "damascus", Lat: 33.5138, Lng: 36.2765, Country: "Syria", CountryCode: "SY", Population: 2503000, Region: "middle-east", Capital: true},
	{Name: "Kuwait City", NameNormalized: "kuwait city", Lat: 29.3759, Lng: 47.9774, Country: "Kuwait", CountryCode: "KW", Population: 2989000, Region: "middle-east", Capital: true},
	{Name: "Doha", NameNormalized: "doha", Lat: 25.2854, Lng: 51.5310, Country: "Qatar", CountryCode: "QA", Population: 2382000, Region: "middle-east", Capital: true},
	{Name: "Muscat", NameNormalized: "muscat", Lat: 23.5880, Lng: 58.3829, Country: "Oman", CountryCode: "OM", Population: 1421409, Region: "middle-east", Capital: true},
	{Name: "Manama", NameNormalized: "manama", Lat: 26.2285, Lng: 50.5860, Country: "Bahrain", CountryCode: "BH", Population: 411000, Region: "middle-east", Capital: true},
	{Name: "Kabul", NameNormalized: "kabul", Lat: 34.5553, Lng: 69.2075, Country: "Afghanistan", CountryCode: "AF", Population: 4601789, Region: "asia", Capital: true},
	{Name: "Tashkent", NameNormalized: "tashkent", Lat: 41.2995, Lng: 69.2401, Country: "Uzbekistan", CountryCode: "UZ", Population: 2571668, Region: "asia", Capital: true},
	{Name: "Almaty", NameNormalized: "almaty", Lat: 43.2220, Lng: 76.8512, Country: "Kazakhstan", CountryCode: "KZ", Population: 1916822, Region: "asia"},
	{Name: "Astana", NameNormalized: "astana", Lat: 51.1694, Lng: 71.4491, Country: "Kazakhstan", CountryCode: "KZ", Population: 1184469, Region: "asia", Capital: true},
	{Name: "Cairo", NameNormalized: "cairo", Lat: 30.0444, Lng: 31.2357, Country: "Egypt", CountryCode: "EG", Population: 20076000, Region: "africa", Capital: true},
	{Name: "Alexandria", NameNormalized: "alexandria", Lat: 31.2001, Lng: 29.9187, Country: "Egypt", CountryCode: "EG", Population: 5200000, Region: "africa"},
	{Name: "Casablanca", NameNormalized: "casablanca", Lat: 33.5731, Lng: -7.5898, Country: "Morocco", CountryCode: "MA", Population: 3359818, Region: "africa"},
	{Name: "Rabat", NameNormalized: "rabat", Lat: 34.0209, Lng: -6.8416, Country: "Morocco", CountryCode: "MA", Population: 577827, Region: "africa", Capital: true},
	{Name: "Marrakech", NameNormalized: "marrakech", Lat: 31.6295, Lng: -7.9811, Country: "Morocco", CountryCode: "MA", Population: 928850, Region: "africa"},
	{Name: "Algiers", NameNormalized: "algiers", Lat: 36.7538, Lng: 3.0588, Country: "Algeria", CountryCode: "DZ", Population: 3415811, Region: "africa", Capital: true},
	{Name: "Tunis", NameNormalized: "tunis", Lat: 36.8065, Lng: 10.1815, Country: "Tunisia", CountryCode: "TN", Population: 1056247, Region: "africa", Capital: true},
	{Name: "Tripoli", NameNormalized: "tripoli", Lat: 32.8867, Lng: 13.1914, Country: "Libya", CountryCode: "LY", Population: 1158000, Region: "africa", Capital: true},
	{Name: "Khartoum", NameNormalized: "khartoum", Lat: 15.5007, Lng: 32.5599, Country: "Sudan", CountryCode: "SD", Population: 5274321, Region: "africa", Capital: true},
	{Name: "Lagos", NameNormalized: "lagos", Lat: 6.5244, Lng: 3.3792, Country: "Nigeria", CountryCode: "NG", Population: 14368000, Region: "africa"},
	{Name: "Abuja", NameNormalized: "abuja", Lat: 9.0765, Lng: 7.3986, Country: "Nigeria", CountryCode: "NG", Population: 3464123, Region: "africa", Capital: true},
	{Name: "Accra", NameNormalized: "accra", Lat: 5.6037, Lng: -0.1870, Country: "Ghana", CountryCode: "GH", Population: 2514000, Region: "africa", Capital: true},
	{Name: "Dakar", NameNormalized: "dakar", Lat: 14.7167, Lng: -17.4677, Country: "Senegal", CountryCode: "SN", Population: 1146053, Region: "africa", Capital: true},
	{Name: "Abidjan", NameNormalized: "abidjan", Lat: 5.3600, Lng: -4.0083, Country: "Ivory Coast", CountryCode: "CI", Population: 4707000, Region: "africa"},
	{Name: "Nairobi", NameNormalized: "nairobi", Lat: -1.2921, Lng: 36.8219, Country: "Kenya", CountryCode: "KE", Population: 4397073, Region: "africa", Capital: true},
	{Name: "Mombasa", NameNormalized: "mombasa", Lat: -4.0435, Lng: 39.6682, Country: "Kenya", CountryCode: "KE", Population: 1208333, Region: "africa"},
	{Name: "Dar es Salaam", NameNormalized: "dar es salaam", Lat: -6.7924, Lng: 39.2083, Country: "Tanzania", CountryCode: "TZ", Population: 6698000, Region: "africa"},
	{Name: "Addis Ababa", NameNormalized: "addis ababa", Lat: 9.0320, Lng: 38.7469, Country: "Ethiopia", CountryCode: "ET", Population: 3352000, Region: "africa", Capital: true},
	{Name: "Kampala", NameNormalized: "kampala", Lat: 0.3476, Lng: 32.5825, Country: "Uganda", CountryCode: "UG", Population: 1650800, Region: "africa", Capital: true},
	{Name: "Kigali", NameNormalized: "kigali", Lat: -1.9403, Lng: 29.8739, Country: "Rwanda", CountryCode: "RW", Population: 1132686, Region: "africa", Capital: true},
	{Name: "Johannesburg", NameNormalized: "johannesburg", Lat: -26.2041, Lng: 28.0473, Country: "South Africa", CountryCode: "ZA", Population: 5635127, Region: "africa"},
	{Name: "Cape Town", NameNormalized: "cape town", Lat: -33.9249, Lng: 18.4241, Country: "South Africa", CountryCode: "ZA", Population: 4618000, Region: "africa"},
	{Name: "Pretoria", NameNormalized: "pretoria", Lat: -25.7461, Lng: 28.1881, Country: "South Africa", CountryCode: "ZA", Population: 2921488, Region: "africa", Capital: true},
	{Name: "Durban", NameNormalized: "durban", Lat: -29.8587, Lng: 31.0218, Country: "South Africa", CountryCode: "ZA", Population: 3720953, Region: "africa"},
	{Name: "Harare", NameNormalized: "harare", Lat: -17.8252, Lng: 31.0335, Country: "Zimbabwe", CountryCode: "ZW", Population: 1606000, Region: "africa", Capital: true},
	{Name: "Lusaka", NameNormalized: "lusaka", Lat: -15.3875, Lng: 28.3228, Country: "Zambia", CountryCode: "ZM", Population: 2906000, Region: "africa", Capital: true},
	{Name: "Maputo", NameNormalized: "maputo", Lat: -25.9692, Lng: 32.5732, Country: "Mozambique", CountryCode: "MZ", Population: 1766823, Region: "africa", Capital: true},
	{Name: "Luanda", NameNormalized: "luanda", Lat: -8.8390, Lng: 13.2894, Country: "Angola", CountryCode: "AO", Population: 8952496, Region: "africa", Capital: true},
	{Name: "Kinshasa", NameNormalized: "kinshasa", Lat: -4.4419, Lng: 15.2663, Country: "Democratic Republic of the Congo", CountryCode: "CD", Population: 14342000, Region: "africa", Capital: true},
	{Name: "Sydney", NameNormalized: "sydney", Lat: -33.8688, Lng: 151.2093, Country: "Australia", CountryCode: "AU", Population: 5312163, Region: "oceania"},
	{Name: "Melbourne", NameNormalized: "melbourne", Lat: -37.8136, Lng: 144.9631, Country: "Australia", CountryCode: "AU", Population: 5078193, Region: "oceania"},
	{Name: "Brisbane", NameNormalized: "brisbane", Lat: -27.4698, Lng: 153.0251, Country: "Australia", CountryCode: "AU", Population: 2560700, Region: "oceania"},
	{Name: "Perth", NameNormalized: "perth", Lat: -31.9505, Lng: 115.8605, Country: "Australia", CountryCode: "AU", Population: 2085973, Region: "oceania"},
	{Name: "Adelaide", NameNormalized: "adelaide", Lat: -34.9285, Lng: 138.6007, Country: "Australia", CountryCode: "AU", Population: 1345777, Region: "oceania"},
	{Name: "Canberra", NameNormalized: "canberra", Lat: -35.2809, Lng: 149.1300, Country: "Australia", CountryCode: "AU", Population: 453558, Region: "oceania", Capital: true},
	{Name: "Gold Coast", NameNormalized: "gold coast", Lat: -28.0167, Lng: 153.4000, Country: "Australia", CountryCode: "AU", Population: 679127, Region: "oceania"},
	{Name: "Darwin", NameNormalized: "darwin", Lat: -12.4634, Lng: 130.8456, Country: "Australia", CountryCode: "AU", Population: 147255, Region: "oceania"},
	{Name: "Auckland", NameNormalized: "auckland", Lat: -36.8485, Lng: 174.7633, Country: "New Zealand", CountryCode: "NZ", Population: 1657000, Region: "oceania"},
	{Name: "Wellington", NameNormalized: "wellington", Lat: -41.2865, Lng: 174.7762, Country: "New Zealand", CountryCode: "NZ", Population: 215400, Region: "oceania", Capital: true},
	{Name: "Christchurch", NameNormalized: "christchurch", Lat: -43.5321, Lng: 172.6362, Country: "New Zealand", CountryCode: "NZ", Population: 381500, Region: "oceania"},
	{Name: "Suva", NameNormalized: "suva", Lat: -18.1416, Lng: 178.4419, Country: "Fiji", CountryCode: "FJ", Population: 93970, Region: "oceania", Capital: true},
	{Name: "Port Moresby", NameNormalized: "port moresby", Lat: -9.4438, Lng: 147.1803, Country: "Papua New Guinea", CountryCode: "PG", Population: 364125, Region: "oceania", Capital: true},
}
