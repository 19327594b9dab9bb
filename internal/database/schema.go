package database

// Identifiers are quoted so the column names survive case folding on PostgreSQL.

const postgresSchema = `
CREATE TABLE IF NOT EXISTS "User" (
	"UserId"   BIGSERIAL PRIMARY KEY,
	"Username" VARCHAR(200) NOT NULL UNIQUE,
	"Password" VARCHAR(200) NOT NULL,
	"Name"     TEXT NOT NULL DEFAULT '',
	"Email"    TEXT NOT NULL DEFAULT '',
	"UL"       SMALLINT NOT NULL DEFAULT 1,
	"dCreated" TIMESTAMP NOT NULL,
	"dSignup"  TIMESTAMP NOT NULL,
	"bEnabled" BOOLEAN NOT NULL DEFAULT TRUE
);

CREATE TABLE IF NOT EXISTS "UserQuota" (
	"UserId"         BIGINT PRIMARY KEY REFERENCES "User"("UserId") ON DELETE CASCADE,
	"nDatabasesHard" BIGINT NOT NULL CHECK ("nDatabasesHard" >= 0),
	"nBytesSoft"     BIGINT NOT NULL CHECK ("nBytesSoft" >= 0),
	"nBytesHard"     BIGINT NOT NULL CHECK ("nBytesHard" >= 0),
	"dCreated"       TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS "UserStat" (
	"UserId"     BIGINT PRIMARY KEY REFERENCES "User"("UserId") ON DELETE CASCADE,
	"nDatabases" BIGINT NOT NULL DEFAULT 0 CHECK ("nDatabases" >= 0),
	"nBytes"     BIGINT NOT NULL DEFAULT 0 CHECK ("nBytes" >= 0),
	"dLastCheck" TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS "DB" (
	"DatabaseId" BIGSERIAL PRIMARY KEY,
	"Name"       VARCHAR(200) NOT NULL UNIQUE,
	"nBytes"     BIGINT NOT NULL DEFAULT 0 CHECK ("nBytes" >= 0),
	"dLastCheck" TIMESTAMP NOT NULL,
	"dCreated"   TIMESTAMP NOT NULL,
	"bEnabled"   BOOLEAN NOT NULL DEFAULT TRUE
);

CREATE TABLE IF NOT EXISTS "DBQuota" (
	"DatabaseId" BIGINT PRIMARY KEY REFERENCES "DB"("DatabaseId") ON DELETE CASCADE,
	"nBytesSoft" BIGINT NOT NULL CHECK ("nBytesSoft" >= 0),
	"nBytesHard" BIGINT NOT NULL CHECK ("nBytesHard" >= 0),
	"dCreated"   TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS "DBOwner" (
	"DatabaseId" BIGINT NOT NULL UNIQUE REFERENCES "DB"("DatabaseId") ON DELETE CASCADE,
	"UserId"     BIGINT NOT NULL REFERENCES "User"("UserId") ON DELETE CASCADE,
	"GroupId"    BIGINT,
	PRIMARY KEY ("DatabaseId", "UserId")
);

CREATE INDEX IF NOT EXISTS "idx_DBOwner_UserId" ON "DBOwner"("UserId");
`

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS "User" (
	"UserId"   INTEGER PRIMARY KEY AUTOINCREMENT,
	"Username" VARCHAR(200) NOT NULL UNIQUE,
	"Password" VARCHAR(200) NOT NULL,
	"Name"     TEXT NOT NULL DEFAULT '',
	"Email"    TEXT NOT NULL DEFAULT '',
	"UL"       INTEGER NOT NULL DEFAULT 1,
	"dCreated" DATETIME NOT NULL,
	"dSignup"  DATETIME NOT NULL,
	"bEnabled" BOOLEAN NOT NULL DEFAULT 1
);

CREATE TABLE IF NOT EXISTS "UserQuota" (
	"UserId"         INTEGER PRIMARY KEY REFERENCES "User"("UserId") ON DELETE CASCADE,
	"nDatabasesHard" INTEGER NOT NULL CHECK ("nDatabasesHard" >= 0),
	"nBytesSoft"     INTEGER NOT NULL CHECK ("nBytesSoft" >= 0),
	"nBytesHard"     INTEGER NOT NULL CHECK ("nBytesHard" >= 0),
	"dCreated"       DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS "UserStat" (
	"UserId"     INTEGER PRIMARY KEY REFERENCES "User"("UserId") ON DELETE CASCADE,
	"nDatabases" INTEGER NOT NULL DEFAULT 0 CHECK ("nDatabases" >= 0),
	"nBytes"     INTEGER NOT NULL DEFAULT 0 CHECK ("nBytes" >= 0),
	"dLastCheck" DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS "DB" (
	"DatabaseId" INTEGER PRIMARY KEY AUTOINCREMENT,
	"Name"       VARCHAR(200) NOT NULL UNIQUE,
	"nBytes"     INTEGER NOT NULL DEFAULT 0 CHECK ("nBytes" >= 0),
	"dLastCheck" DATETIME NOT NULL,
	"dCreated"   DATETIME NOT NULL,
	"bEnabled"   BOOLEAN NOT NULL DEFAULT 1
);

CREATE TABLE IF NOT EXISTS "DBQuota" (
	"DatabaseId" INTEGER PRIMARY KEY REFERENCES "DB"("DatabaseId") ON DELETE CASCADE,
	"nBytesSoft" INTEGER NOT NULL CHECK ("nBytesSoft" >= 0),
	"nBytesHard" INTEGER NOT NULL CHECK ("nBytesHard" >= 0),
	"dCreated"   DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS "DBOwner" (
	"DatabaseId" INTEGER NOT NULL UNIQUE REFERENCES "DB"("DatabaseId") ON DELETE CASCADE,
	"UserId"     INTEGER NOT NULL REFERENCES "User"("UserId") ON DELETE CASCADE,
	"GroupId"    INTEGER,
	PRIMARY KEY ("DatabaseId", "UserId")
);

CREATE INDEX IF NOT EXISTS "idx_DBOwner_UserId" ON "DBOwner"("UserId");
`
