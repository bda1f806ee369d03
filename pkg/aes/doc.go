/*
Package aes is a self-contained AES (FIPS-197) block cipher used by the KMS
activation protocol to encrypt and decrypt fixed-format request and response
payloads.

It provides:
  - Key schedule expansion for 128, 192 and 256-bit keys (BuildSchedule)
  - The two built-in AES-128 keys of the V5 and V6 protocols (BuiltinKey)
  - In-place single block encryption and decryption (Schedule.EncryptBlock, Schedule.DecryptBlock)
  - A 16-byte XOR primitive for callers that chain blocks (XorBlock)

There is no chaining mode, padding or authentication here; the protocol layer
frames messages into blocks and combines them with XorBlock.

# Key Schedule

	Key length  Nk  Rounds  Round keys
	16 bytes    4   10      11
	24 bytes    6   12      13
	32 bytes    8   14      15

Word i (i >= Nk) of the schedule is w[i-Nk] XOR t, where t is:

	SubWord(RotWord(w[i-1])) XOR Rcon   if i mod Nk == 0
	SubWord(w[i-1])                     if Nk == 8 and i mod Nk == 4
	w[i-1]                              otherwise

Rcon starts at 0x01 and doubles in GF(2^8) modulo 0x11B for each use.

# Built-in Keys

When BuildSchedule is given a nil key it expands the constant for the
requested Variant:

	V5  CD7E796F2AB25DCB55FFC8EF8364C470
	V6  A94A4195E201432D9BCB460405D84A21

The Variant only picks the key. It never changes the round count or the
expansion algorithm.

# Block Layout

A block is read as a 4x4 byte matrix in column-major order, so byte r+4c is
row r of column c. Encryption is

	AddRoundKey(0)
	for round 1 .. Nr-1: SubBytes, ShiftRows, MixColumns, AddRoundKey(round)
	SubBytes, ShiftRows, AddRoundKey(Nr)

and decryption runs the inverse steps in reverse order.

# Errors

Every entry point returns *Error for contract violations:

	InvalidKeyLength       key length not 16, 24 or 32
	InvalidBlockLength     block operand not exactly 16 bytes
	UninitializedSchedule  nil or zero Schedule
	UnknownVariant         nil key with a Variant other than V5 or V6

The cipher.Block methods (Encrypt, Decrypt) panic instead, matching crypto/aes.

# Concurrency

Tables are read-only package data. A Schedule is never modified after
BuildSchedule returns and may be shared between goroutines; each goroutine
must use its own block buffer.
*/
package aes
