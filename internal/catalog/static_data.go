package catalog

import "github.com/angelmondragon/groupdrive-backend/pkg/enums"

// staticData is the built-in ex-showroom plus registration price list, in
// rupees. It is never handed out directly; see StaticSource.
var staticData = map[string]BrandCatalog{
	"Tata": {
		"Nexon": {
			"Smart":         {enums.TransmissionManual: 850000, enums.TransmissionAutomatic: 950000},
			"Smart+":        {enums.TransmissionManual: 920000, enums.TransmissionAutomatic: 1020000},
			"Pure":          {enums.TransmissionManual: 970000, enums.TransmissionAutomatic: 1070000},
			"Pure+":         {enums.TransmissionManual: 1050000, enums.TransmissionAutomatic: 1150000},
			"Creative":      {enums.TransmissionManual: 1120000, enums.TransmissionAutomatic: 1220000},
			"Creative+":     {enums.TransmissionManual: 1190000, enums.TransmissionAutomatic: 1290000},
			"Fearless":      {enums.TransmissionManual: 1260000, enums.TransmissionAutomatic: 1360000},
			"Fearless+":     {enums.TransmissionManual: 1340000, enums.TransmissionAutomatic: 1440000},
			"Accomplished":  {enums.TransmissionManual: 1420000, enums.TransmissionAutomatic: 1520000},
			"Accomplished+": {enums.TransmissionManual: 1520000, enums.TransmissionAutomatic: 1620000},
			"XZ+":           {enums.TransmissionManual: 1050000, enums.TransmissionAutomatic: 1150000},
		},
		"Safari": {
			"Smart":         {enums.TransmissionManual: 1680000, enums.TransmissionAutomatic: 1880000},
			"Pure":          {enums.TransmissionManual: 1820000, enums.TransmissionAutomatic: 2020000},
			"Adventure":     {enums.TransmissionManual: 1950000, enums.TransmissionAutomatic: 2150000},
			"Adventure+":    {enums.TransmissionManual: 2080000, enums.TransmissionAutomatic: 2280000},
			"Accomplished":  {enums.TransmissionManual: 2220000, enums.TransmissionAutomatic: 2420000},
			"Accomplished+": {enums.TransmissionManual: 2390000, enums.TransmissionAutomatic: 2590000},
		},
		"Harrier": {
			"Smart":      {enums.TransmissionManual: 1590000, enums.TransmissionAutomatic: 1790000},
			"Pure":       {enums.TransmissionManual: 1720000, enums.TransmissionAutomatic: 1920000},
			"Adventure":  {enums.TransmissionManual: 1850000, enums.TransmissionAutomatic: 2050000},
			"Adventure+": {enums.TransmissionManual: 1980000, enums.TransmissionAutomatic: 2180000},
			"Fearless":   {enums.TransmissionManual: 2110000, enums.TransmissionAutomatic: 2310000},
			"Fearless+":  {enums.TransmissionManual: 2270000, enums.TransmissionAutomatic: 2470000},
		},
		"Punch": {
			"Pure":         {enums.TransmissionManual: 650000, enums.TransmissionAutomatic: 750000},
			"Adventure":    {enums.TransmissionManual: 720000, enums.TransmissionAutomatic: 820000},
			"Accomplished": {enums.TransmissionManual: 830000, enums.TransmissionAutomatic: 930000},
			"Creative+":    {enums.TransmissionManual: 950000, enums.TransmissionAutomatic: 1050000},
		},
		"Altroz": {
			"XE":  {enums.TransmissionManual: 680000, enums.TransmissionAutomatic: 780000},
			"XM":  {enums.TransmissionManual: 750000, enums.TransmissionAutomatic: 850000},
			"XM+": {enums.TransmissionManual: 820000, enums.TransmissionAutomatic: 920000},
			"XT":  {enums.TransmissionManual: 880000, enums.TransmissionAutomatic: 980000},
			"XZ":  {enums.TransmissionManual: 950000, enums.TransmissionAutomatic: 1050000},
			"XZ+": {enums.TransmissionManual: 1020000, enums.TransmissionAutomatic: 1120000},
		},
		"Tiago": {
			"XE":  {enums.TransmissionManual: 550000, enums.TransmissionAutomatic: 630000},
			"XM":  {enums.TransmissionManual: 610000, enums.TransmissionAutomatic: 690000},
			"XT":  {enums.TransmissionManual: 670000, enums.TransmissionAutomatic: 750000},
			"XZ":  {enums.TransmissionManual: 730000, enums.TransmissionAutomatic: 810000},
			"XZ+": {enums.TransmissionManual: 790000, enums.TransmissionAutomatic: 870000},
		},
	},
	"Mahindra": {
		"Scorpio N": {
			"Z2":   {enums.TransmissionManual: 1350000, enums.TransmissionAutomatic: 1550000},
			"Z4":   {enums.TransmissionManual: 1520000, enums.TransmissionAutomatic: 1720000},
			"Z6":   {enums.TransmissionManual: 1720000, enums.TransmissionAutomatic: 1920000},
			"Z8":   {enums.TransmissionManual: 1950000, enums.TransmissionAutomatic: 2150000},
			"Z8 L": {enums.TransmissionManual: 2180000, enums.TransmissionAutomatic: 2380000},
		},
		"XUV700": {
			"MX":    {enums.TransmissionManual: 1480000, enums.TransmissionAutomatic: 1680000},
			"AX3":   {enums.TransmissionManual: 1680000, enums.TransmissionAutomatic: 1880000},
			"AX5":   {enums.TransmissionManual: 1880000, enums.TransmissionAutomatic: 2080000},
			"AX7":   {enums.TransmissionManual: 2120000, enums.TransmissionAutomatic: 2320000},
			"AX7 L": {enums.TransmissionManual: 2380000, enums.TransmissionAutomatic: 2580000},
		},
		"Thar": {
			"AX Opt":      {enums.TransmissionManual: 1150000, enums.TransmissionAutomatic: 1320000},
			"LX":          {enums.TransmissionManual: 1320000, enums.TransmissionAutomatic: 1480000},
			"LX Hard Top": {enums.TransmissionManual: 1480000, enums.TransmissionAutomatic: 1650000},
		},
		"Bolero": {
			"B4":     {enums.TransmissionManual: 950000},
			"B6":     {enums.TransmissionManual: 1050000},
			"B6 Opt": {enums.TransmissionManual: 1150000},
		},
		"XUV 3XO": {
			"MX1":   {enums.TransmissionManual: 780000, enums.TransmissionAutomatic: 880000},
			"MX2":   {enums.TransmissionManual: 850000, enums.TransmissionAutomatic: 950000},
			"MX3":   {enums.TransmissionManual: 920000, enums.TransmissionAutomatic: 1020000},
			"AX5":   {enums.TransmissionManual: 1050000, enums.TransmissionAutomatic: 1150000},
			"AX7":   {enums.TransmissionManual: 1180000, enums.TransmissionAutomatic: 1280000},
			"AX7 L": {enums.TransmissionManual: 1320000, enums.TransmissionAutomatic: 1420000},
		},
		"Scorpio Classic": {
			"S":   {enums.TransmissionManual: 1150000},
			"S3":  {enums.TransmissionManual: 1220000},
			"S5":  {enums.TransmissionManual: 1290000},
			"S7":  {enums.TransmissionManual: 1380000},
			"S9":  {enums.TransmissionManual: 1470000},
			"S11": {enums.TransmissionManual: 1580000},
		},
	},
	"Kia": {
		"Seltos": {
			"HTE":    {enums.TransmissionManual: 1150000, enums.TransmissionAutomatic: 1300000},
			"HTK":    {enums.TransmissionManual: 1280000, enums.TransmissionAutomatic: 1430000},
			"HTK+":   {enums.TransmissionManual: 1420000, enums.TransmissionAutomatic: 1570000},
			"HTX":    {enums.TransmissionManual: 1580000, enums.TransmissionAutomatic: 1730000},
			"HTX+":   {enums.TransmissionManual: 1740000, enums.TransmissionAutomatic: 1890000},
			"GTX":    {enums.TransmissionManual: 1920000, enums.TransmissionAutomatic: 2070000},
			"GTX+":   {enums.TransmissionManual: 2090000, enums.TransmissionAutomatic: 2240000},
			"X-Line": {enums.TransmissionManual: 2290000, enums.TransmissionAutomatic: 2440000},
		},
		"Sonet": {
			"HTE":  {enums.TransmissionManual: 780000, enums.TransmissionAutomatic: 880000},
			"HTK":  {enums.TransmissionManual: 880000, enums.TransmissionAutomatic: 980000},
			"HTK+": {enums.TransmissionManual: 980000, enums.TransmissionAutomatic: 1080000},
			"HTX":  {enums.TransmissionManual: 1080000, enums.TransmissionAutomatic: 1180000},
			"HTX+": {enums.TransmissionManual: 1190000, enums.TransmissionAutomatic: 1290000},
			"GTX+": {enums.TransmissionManual: 1340000, enums.TransmissionAutomatic: 1440000},
		},
		"Carens": {
			"Premium":       {enums.TransmissionManual: 1150000, enums.TransmissionAutomatic: 1300000},
			"Prestige":      {enums.TransmissionManual: 1320000, enums.TransmissionAutomatic: 1470000},
			"Prestige Plus": {enums.TransmissionManual: 1480000, enums.TransmissionAutomatic: 1630000},
			"Luxury":        {enums.TransmissionManual: 1680000, enums.TransmissionAutomatic: 1830000},
			"Luxury Plus":   {enums.TransmissionManual: 1850000, enums.TransmissionAutomatic: 2000000},
		},
		"EV6": {
			"GT Line": {enums.TransmissionAutomatic: 6200000},
		},
	},
	"Hyundai": {
		"Creta": {
			"E":       {enums.TransmissionManual: 1120000, enums.TransmissionAutomatic: 1270000},
			"EX":      {enums.TransmissionManual: 1280000, enums.TransmissionAutomatic: 1430000},
			"S":       {enums.TransmissionManual: 1450000, enums.TransmissionAutomatic: 1600000},
			"S+":      {enums.TransmissionManual: 1590000, enums.TransmissionAutomatic: 1740000},
			"SX":      {enums.TransmissionManual: 1750000, enums.TransmissionAutomatic: 1900000},
			"SX Tech": {enums.TransmissionManual: 1920000, enums.TransmissionAutomatic: 2070000},
			"SX Opt":  {enums.TransmissionManual: 2090000, enums.TransmissionAutomatic: 2240000},
		},
		"Venue": {
			"E":      {enums.TransmissionManual: 780000, enums.TransmissionAutomatic: 880000},
			"S":      {enums.TransmissionManual: 920000, enums.TransmissionAutomatic: 1020000},
			"S+":     {enums.TransmissionManual: 1020000, enums.TransmissionAutomatic: 1120000},
			"SX":     {enums.TransmissionManual: 1150000, enums.TransmissionAutomatic: 1250000},
			"SX+":    {enums.TransmissionManual: 1280000, enums.TransmissionAutomatic: 1380000},
			"SX Opt": {enums.TransmissionManual: 1420000, enums.TransmissionAutomatic: 1520000},
		},
		"Verna": {
			"E":      {enums.TransmissionManual: 1150000, enums.TransmissionAutomatic: 1300000},
			"S":      {enums.TransmissionManual: 1320000, enums.TransmissionAutomatic: 1470000},
			"SX":     {enums.TransmissionManual: 1520000, enums.TransmissionAutomatic: 1670000},
			"SX Opt": {enums.TransmissionManual: 1720000, enums.TransmissionAutomatic: 1870000},
		},
		"Exter": {
			"EX":     {enums.TransmissionManual: 650000, enums.TransmissionAutomatic: 740000},
			"S":      {enums.TransmissionManual: 720000, enums.TransmissionAutomatic: 810000},
			"SX":     {enums.TransmissionManual: 820000, enums.TransmissionAutomatic: 910000},
			"SX Opt": {enums.TransmissionManual: 920000, enums.TransmissionAutomatic: 1010000},
		},
		"Tucson": {
			"Platinum":  {enums.TransmissionAutomatic: 3050000},
			"Signature": {enums.TransmissionAutomatic: 3380000},
		},
	},
	"Honda": {
		"City": {
			"V":  {enums.TransmissionManual: 1250000, enums.TransmissionAutomatic: 1400000},
			"VX": {enums.TransmissionManual: 1420000, enums.TransmissionAutomatic: 1570000},
			"ZX": {enums.TransmissionManual: 1590000, enums.TransmissionAutomatic: 1740000},
		},
		"Elevate": {
			"V":  {enums.TransmissionManual: 1220000, enums.TransmissionAutomatic: 1370000},
			"VX": {enums.TransmissionManual: 1380000, enums.TransmissionAutomatic: 1530000},
			"ZX": {enums.TransmissionManual: 1580000, enums.TransmissionAutomatic: 1730000},
		},
		"Amaze": {
			"E":  {enums.TransmissionManual: 780000, enums.TransmissionAutomatic: 880000},
			"S":  {enums.TransmissionManual: 880000, enums.TransmissionAutomatic: 980000},
			"VX": {enums.TransmissionManual: 980000, enums.TransmissionAutomatic: 1080000},
		},
		"City Hybrid": {
			"V":  {enums.TransmissionAutomatic: 1920000},
			"VX": {enums.TransmissionAutomatic: 2080000},
			"ZX": {enums.TransmissionAutomatic: 2250000},
		},
	},
	"Maruti": {
		"Brezza": {
			"LXI":  {enums.TransmissionManual: 880000, enums.TransmissionAutomatic: 980000},
			"VXI":  {enums.TransmissionManual: 980000, enums.TransmissionAutomatic: 1080000},
			"ZXI":  {enums.TransmissionManual: 1120000, enums.TransmissionAutomatic: 1220000},
			"ZXI+": {enums.TransmissionManual: 1250000, enums.TransmissionAutomatic: 1350000},
		},
		"Fronx": {
			"Sigma":  {enums.TransmissionManual: 780000, enums.TransmissionAutomatic: 860000},
			"Delta":  {enums.TransmissionManual: 880000, enums.TransmissionAutomatic: 960000},
			"Delta+": {enums.TransmissionManual: 950000, enums.TransmissionAutomatic: 1030000},
			"Zeta":   {enums.TransmissionManual: 1050000, enums.TransmissionAutomatic: 1130000},
			"Alpha":  {enums.TransmissionManual: 1180000, enums.TransmissionAutomatic: 1260000},
		},
		"Grand Vitara": {
			"Sigma": {enums.TransmissionManual: 1150000, enums.TransmissionAutomatic: 1280000},
			"Delta": {enums.TransmissionManual: 1280000, enums.TransmissionAutomatic: 1410000},
			"Zeta":  {enums.TransmissionManual: 1480000, enums.TransmissionAutomatic: 1610000},
			"Alpha": {enums.TransmissionManual: 1720000, enums.TransmissionAutomatic: 1850000},
		},
		"Ertiga": {
			"LXI":  {enums.TransmissionManual: 880000, enums.TransmissionAutomatic: 980000},
			"VXI":  {enums.TransmissionManual: 980000, enums.TransmissionAutomatic: 1080000},
			"ZXI":  {enums.TransmissionManual: 1120000, enums.TransmissionAutomatic: 1220000},
			"ZXI+": {enums.TransmissionManual: 1250000, enums.TransmissionAutomatic: 1350000},
		},
		"Swift": {
			"LXI":  {enums.TransmissionManual: 650000, enums.TransmissionAutomatic: 730000},
			"VXI":  {enums.TransmissionManual: 720000, enums.TransmissionAutomatic: 800000},
			"ZXI":  {enums.TransmissionManual: 820000, enums.TransmissionAutomatic: 900000},
			"ZXI+": {enums.TransmissionManual: 920000, enums.TransmissionAutomatic: 1000000},
		},
		"Baleno": {
			"Sigma": {enums.TransmissionManual: 680000, enums.TransmissionAutomatic: 760000},
			"Delta": {enums.TransmissionManual: 780000, enums.TransmissionAutomatic: 860000},
			"Zeta":  {enums.TransmissionManual: 880000, enums.TransmissionAutomatic: 960000},
			"Alpha": {enums.TransmissionManual: 980000, enums.TransmissionAutomatic: 1060000},
		},
		"Dzire": {
			"LXI":  {enums.TransmissionManual: 680000, enums.TransmissionAutomatic: 760000},
			"VXI":  {enums.TransmissionManual: 750000, enums.TransmissionAutomatic: 830000},
			"ZXI":  {enums.TransmissionManual: 850000, enums.TransmissionAutomatic: 930000},
			"ZXI+": {enums.TransmissionManual: 950000, enums.TransmissionAutomatic: 1030000},
		},
	},
	"Volkswagen": {
		"Virtus": {
			"Comfortline": {enums.TransmissionManual: 1280000, enums.TransmissionAutomatic: 1430000},
			"Highline":    {enums.TransmissionManual: 1520000, enums.TransmissionAutomatic: 1670000},
			"Topline":     {enums.TransmissionManual: 1750000, enums.TransmissionAutomatic: 1900000},
		},
		"Taigun": {
			"Comfortline": {enums.TransmissionManual: 1220000, enums.TransmissionAutomatic: 1370000},
			"Highline":    {enums.TransmissionManual: 1450000, enums.TransmissionAutomatic: 1600000},
			"Topline":     {enums.TransmissionManual: 1720000, enums.TransmissionAutomatic: 1870000},
		},
		"Tiguan": {
			"Elegance": {enums.TransmissionAutomatic: 3580000},
			"R-Line":   {enums.TransmissionAutomatic: 3880000},
		},
	},
	"Toyota": {
		"Fortuner": {
			"4x2 MT":       {enums.TransmissionManual: 3580000},
			"4x2 AT":       {enums.TransmissionAutomatic: 3850000},
			"4x4 MT":       {enums.TransmissionManual: 3920000},
			"4x4 AT":       {enums.TransmissionAutomatic: 4180000},
			"Legender 4x2": {enums.TransmissionAutomatic: 4350000},
			"Legender 4x4": {enums.TransmissionAutomatic: 4680000},
		},
		"Innova Crysta": {
			"GX": {enums.TransmissionManual: 2050000, enums.TransmissionAutomatic: 2220000},
			"VX": {enums.TransmissionManual: 2280000, enums.TransmissionAutomatic: 2450000},
			"ZX": {enums.TransmissionManual: 2520000, enums.TransmissionAutomatic: 2690000},
		},
		"Innova Hycross": {
			"GX":     {enums.TransmissionAutomatic: 2050000},
			"GX (O)": {enums.TransmissionAutomatic: 2250000},
			"VX":     {enums.TransmissionAutomatic: 2450000},
			"VX (O)": {enums.TransmissionAutomatic: 2680000},
			"ZX":     {enums.TransmissionAutomatic: 2920000},
			"ZX (O)": {enums.TransmissionAutomatic: 3180000},
		},
		"Urban Cruiser Hyryder": {
			"E": {enums.TransmissionManual: 1150000, enums.TransmissionAutomatic: 1280000},
			"S": {enums.TransmissionManual: 1320000, enums.TransmissionAutomatic: 1450000},
			"G": {enums.TransmissionManual: 1480000, enums.TransmissionAutomatic: 1610000},
			"V": {enums.TransmissionManual: 1680000, enums.TransmissionAutomatic: 1810000},
		},
		"Glanza": {
			"E": {enums.TransmissionManual: 680000, enums.TransmissionAutomatic: 760000},
			"S": {enums.TransmissionManual: 780000, enums.TransmissionAutomatic: 860000},
			"G": {enums.TransmissionManual: 880000, enums.TransmissionAutomatic: 960000},
		},
	},
}
