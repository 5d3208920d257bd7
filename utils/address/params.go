package address

const PaddedLen = 34
const Filler = 'X'

type Network string

const (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
	Regtest Network = "regtest"
)

type Params struct {
	Name    Network
	Prefix  byte
	Version byte
}

var networkParams = [...]Params{
	{Name: Mainnet, Prefix: 'B', Version: 0x19},
	{Name: Testnet, Prefix: 'b', Version: 0x55},
	{Name: Regtest, Prefix: 'K', Version: 0x2d},
}
