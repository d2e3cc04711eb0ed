package dialect

// Reserved word lists for the supported dialects. The ANSI lists are
// cumulative: each standard's slice holds only the words it added on top
// of its predecessor. The DB2 LUW slice likewise holds only the words it
// adds on top of the z/OS list.

// sql92Keywords are the reserved words of ANSI SQL-92.
var sql92Keywords = []string{
	"ABSOLUTE", "ACTION", "ADD", "ALL", "ALLOCATE", "ALTER", "AND", "ANY",
	"ARE", "AS", "ASC", "ASSERTION", "AT", "AUTHORIZATION", "AVG", "BEGIN",
	"BETWEEN", "BIT", "BIT_LENGTH", "BOTH", "BY", "CASCADE", "CASCADED",
	"CASE", "CAST", "CATALOG", "CHAR", "CHARACTER", "CHAR_LENGTH",
	"CHARACTER_LENGTH", "CHECK", "CLOSE", "COALESCE", "COLLATE", "COLLATION",
	"COLUMN", "COMMIT", "CONNECT", "CONNECTION", "CONSTRAINT", "CONSTRAINTS",
	"CONTINUE", "CONVERT", "CORRESPONDING", "COUNT", "CREATE", "CROSS",
	"CURRENT", "CURRENT_DATE", "CURRENT_TIME", "CURRENT_TIMESTAMP",
	"CURRENT_USER", "CURSOR", "DATE", "DAY", "DEALLOCATE", "DEC", "DECIMAL",
	"DECLARE", "DEFAULT", "DEFERRABLE", "DEFERRED", "DELETE", "DESC",
	"DESCRIBE", "DESCRIPTOR", "DIAGNOSTICS", "DISCONNECT", "DISTINCT",
	"DOMAIN", "DOUBLE", "DROP", "ELSE", "END", "ESCAPE", "EXCEPT",
	"EXCEPTION", "EXEC", "EXECUTE", "EXISTS", "EXTERNAL", "EXTRACT",
	"FALSE", "FETCH", "FIRST", "FLOAT", "FOR", "FOREIGN", "FOUND", "FROM",
	"FULL", "GET", "GLOBAL", "GO", "GOTO", "GRANT", "GROUP", "HAVING",
	"HOUR", "IDENTITY", "IMMEDIATE", "IN", "INDICATOR", "INITIALLY",
	"INNER", "INPUT", "INSENSITIVE", "INSERT", "INT", "INTEGER",
	"INTERSECT", "INTERVAL", "INTO", "IS", "ISOLATION", "JOIN", "KEY",
	"LANGUAGE", "LAST", "LEADING", "LEFT", "LEVEL", "LIKE", "LOCAL",
	"LOWER", "MATCH", "MAX", "MIN", "MINUTE", "MODULE", "MONTH", "NAMES",
	"NATIONAL", "NATURAL", "NCHAR", "NEXT", "NO", "NOT", "NULL", "NULLIF",
	"NUMERIC", "OCTET_LENGTH", "OF", "ON", "ONLY", "OPEN", "OPTION", "OR",
	"ORDER", "OUTER", "OUTPUT", "OVERLAPS", "PAD", "PARTIAL", "POSITION",
	"PRECISION", "PREPARE", "PRESERVE", "PRIMARY", "PRIOR", "PRIVILEGES",
	"PROCEDURE", "PUBLIC", "READ", "REAL", "REFERENCES", "RELATIVE",
	"RESTRICT", "REVOKE", "RIGHT", "ROLLBACK", "ROWS", "SCHEMA", "SCROLL",
	"SECOND", "SECTION", "SELECT", "SESSION", "SESSION_USER", "SET", "SIZE",
	"SMALLINT", "SOME", "SPACE", "SQL", "SQLCODE", "SQLERROR", "SQLSTATE",
	"SUBSTRING", "SUM", "SYSTEM_USER", "TABLE", "TEMPORARY", "THEN", "TIME",
	"TIMESTAMP", "TIMEZONE_HOUR", "TIMEZONE_MINUTE", "TO", "TRAILING",
	"TRANSACTION", "TRANSLATE", "TRANSLATION", "TRIM", "TRUE", "UNION",
	"UNIQUE", "UNKNOWN", "UPDATE", "UPPER", "USAGE", "USER", "USING",
	"VALUE", "VALUES", "VARCHAR", "VARYING", "VIEW", "WHEN", "WHENEVER",
	"WHERE", "WITH", "WORK", "WRITE", "YEAR", "ZONE",
}

// sql99Keywords are the reserved words SQL-99 added over SQL-92.
var sql99Keywords = []string{
	"ADMIN", "AFTER", "AGGREGATE", "ALIAS", "ARRAY", "BEFORE", "BINARY",
	"BLOB", "BOOLEAN", "BREADTH", "CALL", "CLASS", "CLOB", "COMPLETION",
	"CONSTRUCTOR", "CYCLE", "DATA", "DEPTH", "DEREF", "DESTROY",
	"DESTRUCTOR", "DETERMINISTIC", "DICTIONARY", "DYNAMIC", "EACH",
	"EQUALS", "EVERY", "FREE", "FUNCTION", "GENERAL", "GROUPING", "HOST",
	"IGNORE", "INITIALIZE", "INOUT", "ITERATE", "LARGE", "LATERAL", "LESS",
	"LIMIT", "LOCALTIME", "LOCALTIMESTAMP", "LOCATOR", "MAP", "MODIFIES",
	"MODIFY", "NCLOB", "NEW", "NONE", "OBJECT", "OFF", "OLD", "OPERATION",
	"ORDINALITY", "OUT", "PARAMETER", "PARAMETERS", "PATH", "POSTFIX",
	"PREFIX", "PREORDER", "RECURSIVE", "REF", "REFERENCING", "RESULT",
	"RETURN", "RETURNS", "ROLE", "ROLLUP", "ROUTINE", "ROW", "SAVEPOINT",
	"SCOPE", "SEARCH", "SEQUENCE", "SETS", "SPECIFIC", "SPECIFICTYPE",
	"SQLEXCEPTION", "SQLWARNING", "START", "STATE", "STATEMENT", "STATIC",
	"STRUCTURE", "TERMINATE", "THAN", "TREAT", "TRIGGER", "UNDER",
	"UNNEST", "VARIABLE", "WITHOUT",
}

// sql2003Keywords are the reserved words SQL-2003 added over SQL-99.
var sql2003Keywords = []string{
	"ASENSITIVE", "ASYMMETRIC", "ATOMIC", "BIGINT", "CONDITION", "CORR",
	"COVAR_POP", "COVAR_SAMP", "CUBE", "CUME_DIST",
	"CURRENT_DEFAULT_TRANSFORM_GROUP", "CURRENT_PATH", "CURRENT_ROLE",
	"CURRENT_TRANSFORM_GROUP_FOR_TYPE", "DENSE_RANK", "ELEMENT", "EXP",
	"FILTER", "FLOOR", "FUSION", "HOLD", "INTERSECTION", "LN", "MEMBER",
	"MERGE", "METHOD", "MOD", "MULTISET", "NORMALIZE", "OVER", "OVERLAY",
	"PARTITION", "PERCENT_RANK", "PERCENTILE_CONT", "PERCENTILE_DISC",
	"POWER", "RANGE", "RANK", "READS", "RELEASE", "ROW_NUMBER",
	"SENSITIVE", "SIMILAR", "SQRT", "STDDEV_POP", "STDDEV_SAMP",
	"SUBMULTISET", "SYMMETRIC", "SYSTEM", "TABLESAMPLE", "UESCAPE",
	"VAR_POP", "VAR_SAMP", "WIDTH_BUCKET", "WINDOW", "WITHIN",
}

// db2zosKeywords are the reserved words of DB2 for z/OS. INFINITY, NAN and
// SNAN are deliberately absent: the LUW profile reclassifies them as
// numeric literals instead.
var db2zosKeywords = []string{
	"ADD", "AFTER", "ALL", "ALLOCATE", "ALLOW", "ALTER", "AND", "ANY",
	"AS", "ASENSITIVE", "ASSOCIATE", "ASUTIME", "AUDIT", "AUX",
	"AUXILIARY", "BEFORE", "BEGIN", "BETWEEN", "BUFFERPOOL", "BY", "CALL",
	"CAPTURE", "CASCADED", "CASE", "CAST", "CCSID", "CHAR", "CHARACTER",
	"CHECK", "CLONE", "CLOSE", "CLUSTER", "COLLECTION", "COLLID", "COLUMN",
	"COMMENT", "COMMIT", "CONCAT", "CONDITION", "CONNECT", "CONNECTION",
	"CONSTRAINT", "CONTAINS", "CONTENT", "CONTINUE", "CREATE", "CURRENT",
	"CURRENT_DATE", "CURRENT_LC_CTYPE", "CURRENT_PATH", "CURRENT_SCHEMA",
	"CURRENT_TIME", "CURRENT_TIMESTAMP", "CURSOR", "DATA", "DATABASE",
	"DAY", "DAYS", "DBINFO", "DECLARE", "DEFAULT", "DELETE", "DESCRIPTOR",
	"DETERMINISTIC", "DISABLE", "DISALLOW", "DISTINCT", "DO", "DOCUMENT",
	"DOUBLE", "DROP", "DSSIZE", "DYNAMIC", "EDITPROC", "ELSE", "ELSEIF",
	"ENCODING", "ENCRYPTION", "END", "ENDING", "ERASE", "ESCAPE", "EXCEPT",
	"EXCEPTION", "EXECUTE", "EXISTS", "EXIT", "EXPLAIN", "EXTERNAL",
	"FENCED", "FETCH", "FIELDPROC", "FINAL", "FIRST", "FOR", "FREE",
	"FROM", "FULL", "FUNCTION", "GENERATED", "GET", "GLOBAL", "GO", "GOTO",
	"GRANT", "GROUP", "HANDLER", "HAVING", "HOLD", "HOUR", "HOURS", "IF",
	"IMMEDIATE", "IN", "INCLUSIVE", "INDEX", "INHERIT", "INNER", "INOUT",
	"INSENSITIVE", "INSERT", "INTERSECT", "INTO", "IS", "ISOBID",
	"ITERATE", "JAR", "JOIN", "KEEP", "KEY", "LABEL", "LANGUAGE", "LAST",
	"LC_CTYPE", "LEAVE", "LEFT", "LIKE", "LOCAL", "LOCALE", "LOCATOR",
	"LOCATORS", "LOCK", "LOCKMAX", "LOCKSIZE", "LONG", "LOOP",
	"MAINTAINED", "MATERIALIZED", "MICROSECOND", "MICROSECONDS", "MINUTE",
	"MINUTES", "MODIFIES", "MONTH", "MONTHS", "NEXT", "NEXTVAL", "NO",
	"NONE", "NOT", "NULL", "NULLS", "NUMPARTS", "OBID", "OF", "ON", "OPEN",
	"OPTIMIZATION", "OPTIMIZE", "OR", "ORDER", "ORGANIZATION", "OUT",
	"OUTER", "PACKAGE", "PADDED", "PARAMETER", "PART", "PARTITION",
	"PARTITIONED", "PARTITIONING", "PATH", "PERIOD", "PIECESIZE", "PLAN",
	"PRECISION", "PREPARE", "PREVVAL", "PRIOR", "PRIQTY", "PRIVILEGES",
	"PROCEDURE", "PROGRAM", "PSID", "PUBLIC", "QUERY", "QUERYNO", "READS",
	"REFERENCES", "REFRESH", "RELEASE", "RENAME", "REPEAT", "RESIGNAL",
	"RESTRICT", "RESULT", "RESULT_SET_LOCATOR", "RETURN", "RETURNS",
	"REVOKE", "RIGHT", "ROLE", "ROLLBACK", "ROUND_CEILING", "ROUND_DOWN",
	"ROUND_FLOOR", "ROUND_HALF_DOWN", "ROUND_HALF_EVEN", "ROUND_HALF_UP",
	"ROUND_UP", "ROW", "ROWSET", "RUN", "SAVEPOINT", "SCHEMA",
	"SCRATCHPAD", "SECOND", "SECONDS", "SECQTY", "SECURITY", "SELECT",
	"SENSITIVE", "SEQUENCE", "SESSION_USER", "SET", "SIGNAL", "SIMPLE",
	"SOME", "SOURCE", "SPECIFIC", "STANDARD", "STATEMENT", "STATIC",
	"STAY", "STOGROUP", "STORES", "STYLE", "SUMMARY", "SYNONYM", "SYSFUN",
	"SYSIBM", "SYSPROC", "SYSTEM", "TABLE", "TABLESPACE", "THEN", "TO",
	"TRIGGER", "TRUNCATE", "TYPE", "UNDO", "UNION", "UNIQUE", "UNTIL",
	"UPDATE", "USER", "USING", "VALIDPROC", "VALUE", "VALUES", "VARIABLE",
	"VARIANT", "VCAT", "VIEW", "VOLATILE", "VOLUMES", "WHEN", "WHENEVER",
	"WHERE", "WHILE", "WITH", "WLM", "XMLEXISTS", "XMLNAMESPACES", "YEAR",
	"YEARS", "ZONE",
}

// db2luwKeywords are the reserved words DB2 for LUW adds over z/OS.
var db2luwKeywords = []string{
	"ACTIVATE", "ALIAS", "ASC", "ATTRIBUTES", "AUTHORIZATION", "BINARY",
	"BIND", "CACHE", "CALLED", "CARDINALITY", "CHANGE", "COMPACT",
	"COMPRESS", "CONTROL", "COUNT", "COUNT_BIG", "CROSS", "CUBE",
	"CURRENT_SERVER", "CURRENT_TIMEZONE", "CURRENT_USER",
	"DATAPARTITIONNAME", "DATAPARTITIONNUM", "DBPARTITIONNAME",
	"DBPARTITIONNUM", "DEFAULTS", "DEFINITION", "DENSERANK", "DENSE_RANK",
	"DESC", "DESCRIBE", "DIAGNOSTICS", "DISCONNECT", "EACH", "ENABLE",
	"ENFORCED", "EVERY", "EXCLUDING", "EXCLUSIVE", "EXTEND", "EXTRACT",
	"FILE", "FOREIGN", "GRAPHIC", "HASH", "HASHED_VALUE", "HINT",
	"IDENTITY", "INCLUDING", "INCREMENT", "INDICATOR", "INITIALLY",
	"INTEGRITY", "ISOLATION", "JAVA", "LATERAL", "LINKTYPE", "LOCALDATE",
	"LOCALTIME", "LOCALTIMESTAMP", "LOGGED", "MAXVALUE", "MINVALUE",
	"MODE", "NATIONAL", "NCHAR", "NCLOB", "NEW", "NEW_TABLE", "NOCACHE",
	"NOCYCLE", "NOMAXVALUE", "NOMINVALUE", "NOORDER", "NORMALIZED",
	"NVARCHAR", "OLD", "OLD_TABLE", "OVER", "OVERRIDING", "PAGESIZE",
	"PASSWORD", "POSITION", "PRIMARY", "RANGE", "RANK", "READ", "RECOVERY",
	"REFERENCING", "RESET", "RESTART", "RID", "ROUTINE", "ROWNUMBER",
	"ROW_NUMBER", "RRN", "SCOPE", "SEARCH", "SESSION", "SQL", "SQLID",
	"STACKED", "STARTING", "STATISTICS", "SUBSTRING", "SYSTEM_USER",
	"TIME", "TIMESTAMP", "TRANSACTION", "TRANSLATION", "TRIM", "UNNEST",
	"USAGE", "VARCHAR", "VARYING", "VERSION", "WITHOUT", "WRITE",
	"XMLCAST", "XMLELEMENT", "YES",
}
