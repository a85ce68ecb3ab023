package goplex

// parameters is the static table of solver configuration knobs addressable
// through SetParameter/Parameter: canonical name to native numeric id plus
// type tag. "logfile" and the "timelimit" alias are handled before this
// table is consulted.
var parameters = map[string]paramInfo{
	"CPX_PARAM_ADVIND":            {1001, paramInt},
	"CPX_PARAM_AGGFILL":           {1002, paramInt},
	"CPX_PARAM_AGGIND":            {1003, paramInt},
	"CPX_PARAM_BASINTERVAL":       {1004, paramInt},
	"CPX_PARAM_CFILEMUL":          {1005, paramInt},
	"CPX_PARAM_CLOCKTYPE":         {1006, paramInt},
	"CPX_PARAM_CRAIND":            {1007, paramInt},
	"CPX_PARAM_DEPIND":            {1008, paramInt},
	"CPX_PARAM_DPRIIND":           {1009, paramInt},
	"CPX_PARAM_PRICELIM":          {1010, paramInt},
	"CPX_PARAM_EPMRK":             {1013, paramDouble},
	"CPX_PARAM_EPOPT":             {1014, paramDouble},
	"CPX_PARAM_EPPER":             {1015, paramDouble},
	"CPX_PARAM_EPRHS":             {1016, paramDouble},
	"CPX_PARAM_FASTMIP":           {1017, paramInt},
	"CPX_PARAM_SIMDISPLAY":        {1019, paramInt},
	"CPX_PARAM_ITLIM":             {1020, paramLong},
	"CPX_PARAM_ROWREADLIM":        {1021, paramInt},
	"CPX_PARAM_NETFIND":           {1022, paramInt},
	"CPX_PARAM_COLREADLIM":        {1023, paramInt},
	"CPX_PARAM_NZREADLIM":         {1024, paramInt},
	"CPX_PARAM_OBJLLIM":           {1025, paramDouble},
	"CPX_PARAM_OBJULIM":           {1026, paramDouble},
	"CPX_PARAM_PERIND":            {1027, paramInt},
	"CPX_PARAM_PERLIM":            {1028, paramInt},
	"CPX_PARAM_PPRIIND":           {1029, paramInt},
	"CPX_PARAM_PREIND":            {1030, paramInt},
	"CPX_PARAM_REINV":             {1031, paramInt},
	"CPX_PARAM_SCAIND":            {1034, paramInt},
	"CPX_PARAM_SCRIND":            {1035, paramInt},
	"CPX_PARAM_SINGLIM":           {1037, paramInt},
	"CPX_PARAM_TILIM":             {1039, paramDouble},
	"CPX_PARAM_PREDUAL":           {1044, paramInt},
	"CPX_PARAM_PREPASS":           {1052, paramInt},
	"CPX_PARAM_DATACHECK":         {1056, paramInt},
	"CPX_PARAM_REDUCE":            {1057, paramInt},
	"CPX_PARAM_PRELINEAR":         {1058, paramInt},
	"CPX_PARAM_LPMETHOD":          {1062, paramInt},
	"CPX_PARAM_QPMETHOD":          {1063, paramInt},
	"CPX_PARAM_WORKDIR":           {1064, paramString},
	"CPX_PARAM_WORKMEM":           {1065, paramDouble},
	"CPX_PARAM_THREADS":           {1067, paramInt},
	"CPX_PARAM_CONFLICTDISPLAY":   {1074, paramInt},
	"CPX_PARAM_SIFTDISPLAY":       {1076, paramInt},
	"CPX_PARAM_SIFTALG":           {1077, paramInt},
	"CPX_PARAM_SIFTITLIM":         {1078, paramLong},
	"CPX_PARAM_MPSLONGNUM":        {1081, paramInt},
	"CPX_PARAM_MEMORYEMPHASIS":    {1082, paramInt},
	"CPX_PARAM_NUMERICALEMPHASIS": {1083, paramInt},
	"CPX_PARAM_FEASOPTMODE":       {1084, paramInt},
	"CPX_PARAM_PARALLELMODE":      {1109, paramInt},
	"CPX_PARAM_TUNINGMEASURE":     {1110, paramInt},
	"CPX_PARAM_TUNINGREPEAT":      {1111, paramInt},
	"CPX_PARAM_TUNINGTILIM":       {1112, paramDouble},
	"CPX_PARAM_TUNINGDISPLAY":     {1113, paramInt},
	"CPX_PARAM_WRITELEVEL":        {1114, paramInt},
	"CPX_PARAM_RANDOMSEED":        {1124, paramInt},
	"CPX_PARAM_DETTILIM":          {1127, paramDouble},
	"CPX_PARAM_FILEENCODING":      {1129, paramString},
	"CPX_PARAM_APIENCODING":       {1130, paramString},
	"CPX_PARAM_OPTIMALITYTARGET":  {1131, paramInt},
	"CPX_PARAM_CLONELOG":          {1132, paramInt},
	"CPX_PARAM_TUNINGDETTILIM":    {1139, paramDouble},
	"CPX_PARAM_CPUMASK":           {1144, paramString},
	"CPX_PARAM_SOLUTIONTYPE":      {1147, paramInt},
	"CPX_PARAM_WARNLIM":           {1157, paramInt},
	"CPX_PARAM_SIFTSIM":           {1158, paramInt},
	"CPX_PARAM_DYNAMICROWS":       {1161, paramInt},
	"CPX_PARAM_RECORD":            {1162, paramInt},
	"CPX_PARAM_PARAMDISPLAY":      {1163, paramInt},
	"CPX_PARAM_FOLDING":           {1164, paramInt},
	"CPX_PARAM_PREREFORM":         {1167, paramInt},
	"CPX_PARAM_WORKERALG":         {1500, paramInt},
	"CPX_PARAM_BENDERSSTRATEGY":   {1501, paramInt},
	"CPX_PARAM_BENDERSFEASCUTTOL": {1509, paramDouble},
	"CPX_PARAM_BENDERSOPTCUTTOL":  {1510, paramDouble},
	"CPX_PARAM_MULTIOBJDISPLAY":   {1600, paramInt},
	"CPX_PARAM_BRDIR":             {2001, paramInt},
	"CPX_PARAM_BTTOL":             {2002, paramDouble},
	"CPX_PARAM_CLIQUES":           {2003, paramInt},
	"CPX_PARAM_COEREDIND":         {2004, paramInt},
	"CPX_PARAM_COVERS":            {2005, paramInt},
	"CPX_PARAM_CUTLO":             {2006, paramDouble},
	"CPX_PARAM_CUTUP":             {2007, paramDouble},
	"CPX_PARAM_EPAGAP":            {2008, paramDouble},
	"CPX_PARAM_EPGAP":             {2009, paramDouble},
	"CPX_PARAM_EPINT":             {2010, paramDouble},
	"CPX_PARAM_MIPDISPLAY":        {2012, paramInt},
	"CPX_PARAM_MIPINTERVAL":       {2013, paramLong},
	"CPX_PARAM_INTSOLLIM":         {2015, paramLong},
	"CPX_PARAM_NODEFILEIND":       {2016, paramInt},
	"CPX_PARAM_NODELIM":           {2017, paramLong},
	"CPX_PARAM_NODESEL":           {2018, paramInt},
	"CPX_PARAM_OBJDIF":            {2019, paramDouble},
	"CPX_PARAM_MIPORDIND":         {2020, paramInt},
	"CPX_PARAM_RELOBJDIF":         {2022, paramDouble},
	"CPX_PARAM_STARTALG":          {2025, paramInt},
	"CPX_PARAM_SUBALG":            {2026, paramInt},
	"CPX_PARAM_TRELIM":            {2027, paramDouble},
	"CPX_PARAM_VARSEL":            {2028, paramInt},
	"CPX_PARAM_BNDSTRENIND":       {2029, paramInt},
	"CPX_PARAM_HEURFREQ":          {2031, paramInt},
	"CPX_PARAM_MIPORDTYPE":        {2032, paramInt},
	"CPX_PARAM_CUTSFACTOR":        {2033, paramDouble},
	"CPX_PARAM_RELAXPREIND":       {2034, paramInt},
	"CPX_PARAM_PRESLVND":          {2037, paramInt},
	"CPX_PARAM_BBINTERVAL":        {2039, paramInt},
	"CPX_PARAM_FLOWCOVERS":        {2040, paramInt},
	"CPX_PARAM_IMPLBD":            {2041, paramInt},
	"CPX_PARAM_PROBE":             {2042, paramInt},
	"CPX_PARAM_GUBCOVERS":         {2044, paramInt},
	"CPX_PARAM_STRONGCANDLIM":     {2045, paramInt},
	"CPX_PARAM_STRONGITLIM":       {2046, paramLong},
	"CPX_PARAM_FRACCAND":          {2048, paramInt},
	"CPX_PARAM_FRACCUTS":          {2049, paramInt},
	"CPX_PARAM_FRACPASS":          {2050, paramLong},
	"CPX_PARAM_FLOWPATHS":         {2051, paramInt},
	"CPX_PARAM_MIRCUTS":           {2052, paramInt},
	"CPX_PARAM_DISJCUTS":          {2053, paramInt},
	"CPX_PARAM_AGGCUTLIM":         {2054, paramInt},
	"CPX_PARAM_MIPCBREDLP":        {2055, paramInt},
	"CPX_PARAM_CUTPASS":           {2056, paramLong},
	"CPX_PARAM_MIPEMPHASIS":       {2058, paramInt},
	"CPX_PARAM_SYMMETRY":          {2059, paramInt},
	"CPX_PARAM_DIVETYPE":          {2060, paramInt},
	"CPX_PARAM_RINSHEUR":          {2061, paramLong},
	"CPX_PARAM_SUBMIPNODELIM":     {2062, paramLong},
	"CPX_PARAM_LBHEUR":            {2063, paramInt},
	"CPX_PARAM_REPEATPRESOLVE":    {2064, paramInt},
	"CPX_PARAM_PROBETIME":         {2065, paramDouble},
	"CPX_PARAM_POLISHTIME":        {2066, paramDouble},
	"CPX_PARAM_REPAIRTRIES":       {2067, paramLong},
	"CPX_PARAM_EPLIN":             {2068, paramDouble},
	"CPX_PARAM_EPRELAX":           {2073, paramDouble},
	"CPX_PARAM_FPHEUR":            {2098, paramInt},
	"CPX_PARAM_EACHCUTLIM":        {2102, paramInt},
	"CPX_PARAM_SOLNPOOLCAPACITY":  {2103, paramInt},
	"CPX_PARAM_SOLNPOOLREPLACE":   {2104, paramInt},
	"CPX_PARAM_SOLNPOOLGAP":       {2105, paramDouble},
	"CPX_PARAM_SOLNPOOLAGAP":      {2106, paramDouble},
	"CPX_PARAM_SOLNPOOLINTENSITY": {2107, paramInt},
	"CPX_PARAM_POPULATELIM":       {2108, paramInt},
	"CPX_PARAM_MIPSEARCH":         {2109, paramInt},
	"CPX_PARAM_MIQCPSTRAT":        {2110, paramInt},
	"CPX_PARAM_ZEROHALFCUTS":      {2111, paramInt},
	"CPX_PARAM_HEUREFFORT":        {2120, paramDouble},
	"CPX_PARAM_POLISHAFTEREPAGAP": {2126, paramDouble},
	"CPX_PARAM_POLISHAFTEREPGAP":  {2127, paramDouble},
	"CPX_PARAM_POLISHAFTERNODE":   {2128, paramLong},
	"CPX_PARAM_POLISHAFTERINTSOL": {2129, paramLong},
	"CPX_PARAM_POLISHAFTERTIME":   {2130, paramDouble},
	"CPX_PARAM_MCFCUTS":           {2134, paramInt},
	"CPX_PARAM_MIPKAPPASTATS":     {2137, paramInt},
	"CPX_PARAM_AUXROOTTHREADS":    {2139, paramInt},
	"CPX_PARAM_INTSOLFILEPREFIX":  {2143, paramString},
	"CPX_PARAM_PROBEDETTIME":      {2150, paramDouble},
	"CPX_PARAM_POLISHAFTERDETTIME": {2151, paramDouble},
	"CPX_PARAM_LANDPCUTS":         {2152, paramInt},
	"CPX_PARAM_RAMPUPDURATION":    {2163, paramInt},
	"CPX_PARAM_RAMPUPDETTILIM":    {2164, paramDouble},
	"CPX_PARAM_RAMPUPTILIM":       {2165, paramDouble},
	"CPX_PARAM_LOCALIMPLBD":       {2181, paramInt},
	"CPX_PARAM_BQPCUTS":           {2195, paramInt},
	"CPX_PARAM_RLTCUTS":           {2196, paramInt},
	"CPX_PARAM_SUBMIPSTARTALG":    {2205, paramInt},
	"CPX_PARAM_SUBMIPSUBALG":      {2206, paramInt},
	"CPX_PARAM_SUBMIPSCAIND":      {2207, paramInt},
	"CPX_PARAM_BAREPCOMP":         {3002, paramDouble},
	"CPX_PARAM_BARGROWTH":         {3003, paramDouble},
	"CPX_PARAM_BAROBJRNG":         {3004, paramDouble},
	"CPX_PARAM_BARALG":            {3007, paramInt},
	"CPX_PARAM_BARCOLNZ":          {3009, paramInt},
	"CPX_PARAM_BARDISPLAY":        {3010, paramInt},
	"CPX_PARAM_BARITLIM":          {3012, paramLong},
	"CPX_PARAM_BARMAXCOR":         {3013, paramInt},
	"CPX_PARAM_BARORDER":          {3014, paramInt},
	"CPX_PARAM_BARSTARTALG":       {3017, paramInt},
	"CPX_PARAM_BARCROSSALG":       {3018, paramInt},
	"CPX_PARAM_BARQCPEPCOMP":      {3020, paramDouble},
	"CPX_PARAM_QPNZREADLIM":       {4001, paramInt},
	"CPX_PARAM_CALCQCPDUALS":      {4003, paramInt},
	"CPX_PARAM_QPMAKEPSDIND":      {4010, paramInt},
	"CPX_PARAM_QTOLININD":         {4012, paramInt},
	"CPX_PARAM_NETITLIM":          {5001, paramLong},
	"CPX_PARAM_NETEPOPT":          {5002, paramDouble},
	"CPX_PARAM_NETEPRHS":          {5003, paramDouble},
	"CPX_PARAM_NETPPRIIND":        {5004, paramInt},
	"CPX_PARAM_NETDISPLAY":        {5005, paramInt},
}
