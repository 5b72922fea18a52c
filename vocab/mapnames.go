package vocab

// MapNames lists every table name the instrument answers a QEMAP request
// for. Not all of them correspond to settable properties; several exist
// only to interpret fields in binary records. A full vocabulary rebuild
// queries each of these in turn.
var MapNames = []string{
	"PRIMFUNCTION", "SECFUNCTION", "AUTORANGE", "UNIT", "JACKNAME", "RSOB",
	"RECORDTYPE", "ISSTABLEFLAG", "TRANSIENTSTATE", "LCDMODESTATE", "LANG",
	"STATE", "ATTRIBUTE", "FILEMODE", "BEEPERTESTSTATE", "MEMSIZE", "MODE",
	"READINGID", "SESSIONTYPE", "XAJACKNAME", "TESTPATTERN", "MPDEV_PROPS",
	"JACKPOSITIONSTATUS", "MPQ_PROPS", "BUTTONNAME", "CHANNEL", "MP_PROPS",
	"SAMPLETIME", "PRESSTYPE", "POWERMODE", "LEDSTATE", "CALSTATUS", "RSM",
	"BLIGHTVALS", "ACSMOOTH", "TEMPUNIT", "CONTBEEP", "JACKDETECT", "BOLT",
	"UPDATEMODE", "DBMREF", "PWPOL", "SI", "BLVALS", "CONTBEEPOS", "ABLTO",
	"HZEDGE", "MEMVALS", "DIGITS", "NUMFMT", "DCPOL", "TIMEFMT", "APOFFTO",
	"DATEFMT", "BEEPER", "RECEVENTTH",
}
