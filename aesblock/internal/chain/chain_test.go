package chain

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SunsetMkt/vlmcsd/pkg/aes"
)

const (
	nistKey = "2b7e151628aed2a6abf7158809cf4f3c"
	nistMsg = "6bc1bee22e409f96e93d7e117393172a" +
		"ae2d8a571e03ac9c9eb76fac45af8e51" +
		"30c81c46a35ce411e5fbc1191a0a52ef" +
		"f69f2445df4f9b17ad2b417be66c3710"
)

func unhex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func nistSchedule(t *testing.T) *aes.Schedule {
	t.Helper()
	s, err := aes.NewSchedule(unhex(t, nistKey))
	require.NoError(t, err)
	return s
}

// SP 800-38A F.1.1 ECB-AES128.
func TestECB(t *testing.T) {
	s := nistSchedule(t)
	msg := unhex(t, nistMsg)

	ct, err := EncryptECB(s, msg)
	require.NoError(t, err)
	require.Equal(t, "3ad77bb40d7a3660a89ecaf32466ef97"+
		"f5d3d58503b9699de785895a96fdbaaf"+
		"43b1cd7f598ece23881b00e3ed030688"+
		"7b0c785e27e8ad3f8223207104725dd4", hex.EncodeToString(ct))
	require.Equal(t, unhex(t, nistMsg), msg, "input must not be modified")

	pt, err := DecryptECB(s, ct)
	require.NoError(t, err)
	require.Equal(t, msg, pt)

	_, err = EncryptECB(s, msg[:15])
	require.ErrorContains(t, err, "not block aligned")
	_, err = DecryptECB(s, msg[:17])
	require.ErrorContains(t, err, "not block aligned")
}

// SP 800-38A F.2.1 CBC-AES128.
func TestCBC(t *testing.T) {
	s := nistSchedule(t)
	iv := unhex(t, "000102030405060708090a0b0c0d0e0f")
	msg := unhex(t, nistMsg)

	ct, err := EncryptCBC(s, iv, msg)
	require.NoError(t, err)
	require.Equal(t, "7649abac8119b246cee98e9b12e9197d"+
		"5086cb9b507219ee95db113a917678b2"+
		"73bed6b8e3c1743b7116e69e22229516"+
		"3ff1caa1681fac09120eca307586e1a7", hex.EncodeToString(ct))
	require.Equal(t, "000102030405060708090a0b0c0d0e0f", hex.EncodeToString(iv))

	pt, err := DecryptCBC(s, iv, ct)
	require.NoError(t, err)
	require.Equal(t, msg, pt)
}

func TestCBCRejectsBadInput(t *testing.T) {
	s := nistSchedule(t)

	_, err := EncryptCBC(s, make([]byte, 8), make([]byte, 16))
	require.ErrorContains(t, err, "IV must be 16 bytes")
	_, err = DecryptCBC(s, make([]byte, 16), make([]byte, 20))
	require.ErrorContains(t, err, "not block aligned")
}

func TestCBCWithBuiltinKeys(t *testing.T) {
	msg := PadISO9797M2([]byte("KMS V6 request payload that spans several blocks"))
	iv := make([]byte, aes.BlockSize)

	for _, v := range []aes.Variant{aes.V5, aes.V6} {
		s, err := aes.NewBuiltinSchedule(v)
		require.NoError(t, err)

		ct, err := EncryptCBC(s, iv, msg)
		require.NoError(t, err)
		pt, err := DecryptCBC(s, iv, ct)
		require.NoError(t, err)
		plain, err := UnpadISO9797M2(pt)
		require.NoError(t, err)
		require.Equal(t, "KMS V6 request payload that spans several blocks", string(plain))
	}
}

func TestUninitializedScheduleSurfaces(t *testing.T) {
	var s aes.Schedule
	_, err := EncryptECB(&s, make([]byte, 16))
	require.True(t, aes.IsUninitialized(err))
	_, err = CMAC(&s, nil)
	require.True(t, aes.IsUninitialized(err))
}

func TestPadISO9797M2(t *testing.T) {
	require.Equal(t, append([]byte{0x80}, make([]byte, 15)...), PadISO9797M2(nil))

	padded := PadISO9797M2([]byte("abc"))
	require.Len(t, padded, 16)
	require.Equal(t, byte(0x80), padded[3])

	full := PadISO9797M2(make([]byte, 16))
	require.Len(t, full, 32)
	require.Equal(t, byte(0x80), full[16])

	for _, n := range []int{0, 1, 15, 16, 17, 31} {
		data := make([]byte, n)
		for i := range data {
			data[i] = byte(i + 1)
		}
		back, err := UnpadISO9797M2(PadISO9797M2(data))
		require.NoError(t, err, n)
		require.Equal(t, data, back, n)
	}
}

func TestUnpadISO9797M2RejectsBadPadding(t *testing.T) {
	for _, data := range [][]byte{
		nil,
		make([]byte, 16),
		{0x01, 0x02, 0x03},
		append([]byte{0x80}, make([]byte, 16)...),
	} {
		_, err := UnpadISO9797M2(data)
		require.EqualError(t, err, "bad padding")
	}
}

// RFC 4493 section 4.
func TestCMAC(t *testing.T) {
	s := nistSchedule(t)

	k1, k2, err := generateCMACSubkeys(s)
	require.NoError(t, err)
	require.Equal(t, "fbeed618357133667c85e08f7236a8de", hex.EncodeToString(k1))
	require.Equal(t, "f7ddac306ae266ccf90bc11ee46d513b", hex.EncodeToString(k2))

	msg := unhex(t, nistMsg)
	tests := []struct {
		n   int
		mac string
	}{
		{0, "bb1d6929e95937287fa37d129b756746"},
		{16, "070a16b46b4d4144f79bdd9dd04a287c"},
		{40, "dfa66747de9ae63030ca32611497c827"},
		{64, "51f0bebf7e3b9d92fc49741779363cfe"},
	}
	for _, tt := range tests {
		mac, err := CMAC(s, msg[:tt.n])
		require.NoError(t, err)
		require.Equal(t, tt.mac, hex.EncodeToString(mac), "length %d", tt.n)
	}
}

func TestCMACMatchesManualChain(t *testing.T) {
	s := nistSchedule(t)
	msg := unhex(t, nistMsg)[:40]
	orig := append([]byte(nil), msg...)

	_, k2, err := generateCMACSubkeys(s)
	require.NoError(t, err)

	x := make([]byte, aes.BlockSize)
	for i := 0; i < 2; i++ {
		require.NoError(t, aes.XorBlock(msg[i*16:(i+1)*16], x))
		require.NoError(t, s.EncryptBlock(x))
	}
	last := make([]byte, aes.BlockSize)
	copy(last, msg[32:])
	last[8] = 0x80
	require.NoError(t, aes.XorBlock(k2, last))
	require.NoError(t, aes.XorBlock(last, x))
	require.NoError(t, s.EncryptBlock(x))

	mac, err := CMAC(s, msg)
	require.NoError(t, err)
	require.Equal(t, x, mac)
	require.Equal(t, orig, msg)
}
