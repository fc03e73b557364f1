package pfr

// CityLocation is a home city and its airport coordinates (west longitudes negative).
type CityLocation struct {
	Name      string
	Latitude  float64
	Longitude float64
	Airport   string
}

var locations = []CityLocation{
	{"Boston", 42.3656, -71.0096, "BOS"},
	{"Phoenix", 33.4352, -112.0101, "PHX"},
	{"Chicago", 41.9803, -87.9090, "ORD"},
	{"Green Bay", 44.4923, -88.1278, "GRB"},
	{"New York", 40.6895, -74.1745, "EWR"},
	{"Detroit", 42.2162, -83.3554, "DTW"},
	{"Washington DC", 38.9531, -77.4565, "IAD"},
	{"Philadelphia", 39.9526, -75.1652, "PHL"},
	{"Pittsburgh", 40.4919, -80.2352, "PIT"},
	{"Los Angeles", 33.9416, -118.4085, "LAX"},
	{"San Francisco", 37.3639, -121.9289, "SJC"},
	{"Cleveland", 41.4058, -81.8539, "CLE"},
	{"Indianapolis", 39.7169, -86.2956, "IND"},
	{"Dallas", 32.8998, -97.0403, "DFW"},
	{"Kansas City", 39.3036, -94.7093, "MCI"},
	{"Denver", 39.8564, -104.6764, "DEN"},
	{"Providence", 41.7235, -71.4270, "PVD"},
	{"Las Vegas", 36.0840, -115.1537, "LAS"},
	{"Nashville", 36.1263, -86.6774, "BNA"},
	{"Buffalo", 42.9397, -78.7295, "BUF"},
	{"Minneapolis", 44.8848, -93.2223, "MSP"},
	{"Atlanta", 33.6407, -84.4277, "ATL"},
	{"Miami", 26.0742, -80.1506, "FLL"},
	{"New Orleans", 29.9911, -90.2592, "MSY"},
	{"Cincinnati", 39.0508, -84.6673, "CVG"},
	{"Seattle", 47.4480, -122.3088, "SEA"},
	{"Tampa Bay", 27.9772, -82.5311, "TPA"},
	{"Charlotte", 35.2144, -80.9473, "CLT"},
	{"Jacksonville", 30.4941, -81.6879, "JAX"},
	{"Baltimore", 39.1774, -76.6684, "BWI"},
	{"Houston", 29.9902, -95.3368, "IAH"},
	{"Oakland", 37.7126, -122.2197, "OAK"},
	{"San Diego", 32.7338, -117.1933, "SAN"},
	{"St. Louis", 38.7499, -90.3748, "STL"},
}
