package goplex

// Native status codes with special meaning to the adapter:
//   - cpxerrNotMIP is feature detection, not a failure: querying column type
//     metadata on a pure LP reports it, and the kind queries answer
//     "continuous" instead of propagating it.
//   - cpxerrNegativeSurplus is the expected outcome of the first phase of
//     every sized-buffer query (names, sparse rows).
//   - cpxerrNoNames means the model carries no name metadata at all; name
//     queries answer with the empty string instead of propagating it.
const (
	cpxerrNegativeSurplus = 1207
	cpxerrNoNames         = 1219
	cpxerrNotMIP          = 3003
)

// errorCodes maps native CPLEX error codes to their symbolic names. Codes
// not listed here are reported through the fallback message in
// translateCode.
var errorCodes = map[int]string{
	1001: "CPXERR_NO_MEMORY",
	1002: "CPXERR_NO_ENVIRONMENT",
	1003: "CPXERR_BAD_ARGUMENT",
	1004: "CPXERR_NULL_POINTER",
	1006: "CPXERR_CALLBACK",
	1009: "CPXERR_NO_PROBLEM",
	1012: "CPXERR_LIMITS_TOO_BIG",
	1013: "CPXERR_BAD_PARAM_NUM",
	1014: "CPXERR_PARAM_TOO_SMALL",
	1015: "CPXERR_PARAM_TOO_BIG",
	1016: "CPXERR_RESTRICTED_VERSION",
	1017: "CPXERR_NOT_FOR_MIP",
	1018: "CPXERR_NOT_FOR_QP",
	1019: "CPXERR_CHILD_OF_CHILD",
	1020: "CPXERR_TOO_MANY_THREADS",
	1021: "CPXERR_CANT_CLOSE_CHILD",
	1022: "CPXERR_BAD_PROB_TYPE",
	1023: "CPXERR_NOT_ONE_PROBLEM",
	1024: "CPXERR_NOT_MILPCLASS",
	1026: "CPXERR_NOT_FOR_QCP",
	1031: "CPXERR_NOT_FOR_MIQP",
	1032: "CPXERR_ALGNOTLICENSED",
	1045: "CPXERR_NOT_FOR_BENDERS",
	1051: "CPXERR_TIME_LIMIT_NOT_REACHED",
	1056: "CPXERR_NO_FILENAME",
	1100: "CPXERR_LOCK_CREATE",
	1101: "CPXERR_THREAD_FAILED",
	1117: "CPXERR_NO_LOADED_PROBLEM",
	1200: "CPXERR_INDEX_RANGE",
	1201: "CPXERR_COL_INDEX_RANGE",
	1203: "CPXERR_ROW_INDEX_RANGE",
	1205: "CPXERR_INDEX_RANGE_LOW",
	1206: "CPXERR_INDEX_RANGE_HIGH",
	1207: "CPXERR_NEGATIVE_SURPLUS",
	1208: "CPXERR_ARRAY_TOO_LONG",
	1209: "CPXERR_NAME_CREATION",
	1210: "CPXERR_NAME_NOT_FOUND",
	1211: "CPXERR_NO_RHS_IN_OBJ",
	1215: "CPXERR_BAD_CHAR",
	1216: "CPXERR_BAD_ID",
	1217: "CPXERR_NO_SOLN",
	1219: "CPXERR_NO_NAMES",
	1221: "CPXERR_NOT_FIXED",
	1222: "CPXERR_DUP_ENTRY",
	1223: "CPXERR_NO_BARRIER_SOLN",
	1224: "CPXERR_NULL_NAME",
	1226: "CPXERR_ARRAY_NOT_ASCENDING",
	1227: "CPXERR_COUNT_RANGE",
	1228: "CPXERR_COUNT_OVERLAP",
	1231: "CPXERR_BAD_LUB",
	1232: "CPXERR_BAD_CTYPE",
	1233: "CPXERR_BAD_SENSE",
	1234: "CPXERR_NO_RNGVAL",
	1251: "CPXERR_NODE_INDEX_RANGE",
	1252: "CPXERR_ARC_INDEX_RANGE",
	1254: "CPXERR_ABORT_STRONGBRANCH",
	1260: "CPXERR_NO_NORMS",
	1261: "CPXERR_NOT_DUAL_UNBOUNDED",
	1262: "CPXERR_TILIM_STRONGBRANCH",
	1263: "CPXERR_BAD_STATUS",
	1264: "CPXERR_NO_BASIC_SOLN",
	1266: "CPXERR_TILIM_CONDITION_NO",
	1292: "CPXERR_NO_DUAL_SOLN",
	1298: "CPXERR_NOT_MIN_COST_FLOW",
	1300: "CPXERR_BAD_PRIORITY",
	1301: "CPXERR_ORDER_BAD_DIRECTION",
	1421: "CPXERR_NO_SENSIT",
	1422: "CPXERR_FAIL_OPEN_WRITE",
	1423: "CPXERR_FAIL_OPEN_READ",
	1424: "CPXERR_BAD_FILETYPE",
	1425: "CPXERR_XMLPARSE",
	1431: "CPXERR_NET_DATA",
	1433: "CPXERR_NOT_SAV_FILE",
	1434: "CPXERR_SAV_FILE_DATA",
	1435: "CPXERR_SAV_FILE_WRITE",
	1436: "CPXERR_FILE_ENTRIES",
	1437: "CPXERR_SBASE_ILLEGAL",
	1438: "CPXERR_BAS_FILE_SHORT",
	1439: "CPXERR_BAD_INDICATOR",
	1440: "CPXERR_NO_ENDTIME",
	1441: "CPXERR_IN_INFOCALLBACK",
	1442: "CPXERR_MIPSEARCH_WITH_CALLBACKS",
	1443: "CPXERR_LP_NOT_IN_ENVIRONMENT",
	1444: "CPXERR_PARAM_INCOMPATIBLE",
	1445: "CPXERR_MSG_NO_CHANNEL",
	1446: "CPXERR_MSG_NO_FILEPTR",
	1447: "CPXERR_MSG_NO_FUNCTION",
	1449: "CPXERR_BAS_FILE_SIZE",
	1453: "CPXERR_NO_VECTOR_SOLN",
	1457: "CPXERR_NOT_SAV_OR_PRM_FILE",
	1461: "CPXERR_NO_MMX",
	1462: "CPXERR_NOT_UNBOUNDED",
	1550: "CPXERR_ARRAY_BAD_SOS_TYPE",
	1551: "CPXERR_MISS_SOS_TYPE",
	1602: "CPXERR_NO_INT_X",
	1605: "CPXERR_NO_SOS",
	1607: "CPXERR_NO_ORDER",
	1609: "CPXERR_INT_TOO_BIG",
	1610: "CPXERR_SUBPROB_SOLVE",
	1612: "CPXERR_NO_MIPSTART",
	1615: "CPXERR_NO_TREE",
	1618: "CPXERR_TREE_MEMORY_LIMIT",
	1620: "CPXERR_NODE_ON_DISK",
	1621: "CPXERR_PTHREAD_MUTEX_INIT",
	1622: "CPXERR_PTHREAD_CREATE",
	1701: "CPXERR_UNSUPPORTED_CONSTRAINT_TYPE",
	1702: "CPXERR_ILL_DEFINED_PWL",
	1719: "CPXERR_NO_PROBLEM_TYPE",
	1801: "CPXERR_WORK_FILE_OPEN",
	1802: "CPXERR_WORK_FILE_READ",
	1803: "CPXERR_WORK_FILE_WRITE",
	1804: "CPXERR_IN_USE",
	1806: "CPXERR_NO_INFO",
	1807: "CPXERR_SUPPORT_NOT_AVAILABLE",
	3003: "CPXERR_NOT_MIP",
	3006: "CPXERR_BAD_ROW_ID",
	3016: "CPXERR_BAD_METHOD",
	3019: "CPXERR_NO_CONFLICT",
	3020: "CPXERR_CONFLICT_UNSTABLE",
	3024: "CPXERR_NO_SOLNPOOL",
	3413: "CPXERR_MISS_SOS_TYPE",
	3414: "CPXERR_NO_SOS_SEPARABLE",
	3504: "CPXERR_ABORT_STRONGBRANCH",
	3601: "CPXERR_STR_PARAM_TOO_LONG",
	3602: "CPXERR_DECOMPRESSION",
	3603: "CPXERR_BAD_NUMBER",
	3604: "CPXERR_BAD_EXPO_RANGE",
	3605: "CPXERR_NO_OBJ_SENSE",
	3660: "CPXERR_ADJ_SIGNS",
	3661: "CPXERR_RHS_IN_OBJ",
	3662: "CPXERR_ADJ_SIGN_SENSE",
	3663: "CPXERR_QUAD_IN_ROW",
	3664: "CPXERR_ADJ_SIGN_QUAD",
	3665: "CPXERR_NO_OPERATOR",
	3666: "CPXERR_NO_OP_OR_SENSE",
	3667: "CPXERR_NO_ID_FIRST",
	3668: "CPXERR_NO_RHS_COEFF",
	3669: "CPXERR_NO_NUMBER_FIRST",
	3670: "CPXERR_NO_QUAD_EXP",
	3671: "CPXERR_QUAD_EXP_NOT_2",
	3672: "CPXERR_NO_QP_OPERATOR",
	3673: "CPXERR_NO_NUMBER",
	3674: "CPXERR_NO_ID",
	3675: "CPXERR_BAD_ID",
	3676: "CPXERR_BAD_EXPONENT",
	3677: "CPXERR_Q_NOT_SYMMETRIC",
	3680: "CPXERR_NO_BOUND_TYPE",
	3681: "CPXERR_BAD_BOUND_TYPE",
	3682: "CPXERR_NO_NUMBER_BOUND",
	3684: "CPXERR_NO_SOS_TYPE",
	3685: "CPXERR_TOO_MANY_RIMS",
	3686: "CPXERR_TOO_MANY_RIM_ROWS",
	3687: "CPXERR_NO_ROW_NAME",
	3688: "CPXERR_BAD_OBJ_SENSE",
	3801: "CPXERR_BAS_FILE_SYNTAX",
	3900: "CPXERR_NO_NAME_SECTION",
	3901: "CPXERR_BAD_SOS_TYPE",
	3902: "CPXERR_COL_ROW_REPEATS",
	3903: "CPXERR_RIM_ROW_REPEATS",
	3904: "CPXERR_ROW_REPEATS",
	3905: "CPXERR_COL_REPEATS",
	3906: "CPXERR_RIM_REPEATS",
	3907: "CPXERR_ROW_UNKNOWN",
	3908: "CPXERR_COL_UNKNOWN",
	3909: "CPXERR_NO_ROW_SENSE",
	3910: "CPXERR_EXTRA_FX_BOUND",
	3911: "CPXERR_EXTRA_FR_BOUND",
	3912: "CPXERR_EXTRA_BV_BOUND",
	3913: "CPXERR_BAD_BOUND_SENSE",
	3914: "CPXERR_NO_BOUND_SENSE",
	3915: "CPXERR_BAD_SECTION_ENDATA",
	3916: "CPXERR_INT_TOO_BIG_INPUT",
	3917: "CPXERR_NAME_TOO_LONG",
	3918: "CPXERR_LINE_TOO_LONG",
	3919: "CPXERR_NO_ROWS_SECTION",
	3920: "CPXERR_NO_COLUMNS_SECTION",
	3921: "CPXERR_BAD_SECTION_BOUNDS",
	3922: "CPXERR_RANGE_SECTION_ORDER",
	3923: "CPXERR_BAD_SECTION_QMATRIX",
	3924: "CPXERR_NO_OBJECTIVE",
	3925: "CPXERR_ROW_REPEAT_PRINT",
	3926: "CPXERR_COL_REPEAT_PRINT",
	3927: "CPXERR_RIMNZ_REPEATS",
	3928: "CPXERR_EXTRA_INTORG",
	3929: "CPXERR_EXTRA_INTEND",
	3930: "CPXERR_EXTRA_SOSORG",
	3931: "CPXERR_EXTRA_SOSEND",
	3932: "CPXERR_TOO_MANY_COLS",
	3933: "CPXERR_TOO_MANY_ROWS",
	3934: "CPXERR_NO_SECTION",
	3935: "CPXERR_BAD_SYNTAX",
	3936: "CPXERR_SOS_SECTION_ORDER",
	3937: "CPXERR_RANGE_DUP",
	3938: "CPXERR_BOUND_DUP",
	3939: "CPXERR_OBJ_SENSE_DUP",
	3940: "CPXERR_NO_ROWS",
	3941: "CPXERR_NO_COLS",
	3945: "CPXERR_NOT_MPS_FILE",
	3949: "CPXERR_UNSUPPORTED_SUFFIX",
	3950: "CPXERR_DUPLICATE_NAME",
	4001: "CPXERR_Q_NOT_POS_DEF",
	4003: "CPXERR_NOT_QP",
	4006: "CPXERR_Q_DUP_ENTRY",
	4011: "CPXERR_QCP_SENSE",
	5002: "CPXERR_QUAD_DUP_ENTRY",
	5004: "CPXERR_QUAD_EXP_NOT_POS_DEF",
	5011: "CPXERR_BAD_LAZY_UCUT",
	5012: "CPXERR_LAZY_IN_LP",
	6002: "CPXERR_ARRAY_NOT_ASCENDING_MIN",
	6003: "CPXERR_PRESLV_INF",
	6004: "CPXERR_PRESLV_UNBD",
	6005: "CPXERR_PRESLV_NO_PROB",
	6006: "CPXERR_PRESLV_ABORT",
	6007: "CPXERR_PRESLV_BASIS_MEM",
	6008: "CPXERR_PRESLV_COPYSOS",
	6009: "CPXERR_PRESLV_COPYORDER",
	6010: "CPXERR_PRESLV_SOLN_MIP",
	6011: "CPXERR_PRESLV_SOLN_QP",
	6012: "CPXERR_PRESLV_START_LP",
	6013: "CPXERR_PRESLV_FAIL_BASIS",
	6014: "CPXERR_PRESLV_NO_BASIS",
	6015: "CPXERR_PRESLV_INForUNBD",
	6016: "CPXERR_PRESLV_DUAL",
	6017: "CPXERR_PRESLV_UNCRUSHFORM",
	6018: "CPXERR_PRESLV_CRUSHFORM",
	6019: "CPXERR_PRESLV_BAD_PARAM",
	6020: "CPXERR_PRESLV_TIME_LIM",
	32000: "CPXERR_LICENSE_MIN",
	32201: "CPXERR_ILOG_LICENSE",
	32301: "CPXERR_NO_MIP_LIC",
	32302: "CPXERR_NO_BARRIER_LIC",
	32305: "CPXERR_NO_MIQP_LIC",
	32018: "CPXERR_BADLDWID",
	32023: "CPXERR_BADPRODUCT",
	32024: "CPXERR_ALGNOTLICENSED",
}
