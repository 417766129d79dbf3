package extinction

// Compiled-in reference tables, 650-1000 nm, in 1/(cm·M) on the decadic
// scale. Rows are sorted by wavelength. Only datasets with a verified
// transcription are bundled; the rest are supplied through NewRegistry.
var builtinTables = [numDatasets][]Sample{
	Gratzer: gratzerTable,
}

// gratzerTable is Prahl's compilation of Gratzer and Kollias, sampled
// every 10 nm.
var gratzerTable = []Sample{
	{650, 368, 3750.12},
	{660, 319.6, 3226.56},
	{670, 294, 2795.12},
	{680, 277.6, 2407.92},
	{690, 276, 2051.96},
	{700, 290, 1794.28},
	{710, 314, 1540.48},
	{720, 348, 1325.88},
	{730, 390, 1102.2},
	{740, 446, 1115.88},
	{750, 518, 1405.24},
	{760, 586, 1548.52},
	{770, 652, 1311.88},
	{780, 710, 1075.44},
	{790, 756, 890.8},
	{800, 816, 761.72},
	{810, 864, 717.08},
	{820, 916, 693.76},
	{830, 974, 693.04},
	{840, 1022, 692.36},
	{850, 1058, 691.32},
	{860, 1092, 694.32},
	{870, 1128, 705.84},
	{880, 1154, 726.44},
	{890, 1178, 743.6},
	{900, 1198, 761.84},
	{910, 1214, 774.56},
	{920, 1224, 777.36},
	{930, 1222, 763.84},
	{940, 1214, 693.44},
	{950, 1204, 602.24},
	{960, 1186, 525.56},
	{970, 1162, 429.32},
	{980, 1128, 359.656},
	{990, 1080, 283.22},
	{1000, 1024, 206.784},
}
