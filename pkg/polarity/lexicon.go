package polarity

var englishIntensifiers = map[string]float64{
	"very":         1.3,
	"really":       1.3,
	"so":           1.3,
	"too":          1.2,
	"extremely":    1.5,
	"incredibly":   1.5,
	"absolutely":   1.4,
	"totally":      1.3,
	"completely":   1.3,
	"highly":       1.3,
	"super":        1.3,
	"quite":        1.1,
	"pretty":       1.1,
	"most":         1.2,
	"slightly":     0.6,
	"somewhat":     0.7,
	"barely":       0.5,
	"utterly":      1.5,
	"deeply":       1.3,
	"truly":        1.3,
	"particularly": 1.2,
}

var englishNegators = map[string]bool{
	"not":       true,
	"no":        true,
	"never":     true,
	"nothing":   true,
	"neither":   true,
	"nor":       true,
	"don't":     true,
	"doesn't":   true,
	"didn't":    true,
	"isn't":     true,
	"wasn't":    true,
	"aren't":    true,
	"weren't":   true,
	"can't":     true,
	"cannot":    true,
	"won't":     true,
	"wouldn't":  true,
	"shouldn't": true,
	"couldn't":  true,
	"hardly":    true,
}

var englishWords = map[string]Word{
	// positive
	"good":        {0.7, 0.6},
	"great":       {0.8, 0.75},
	"excellent":   {1.0, 1.0},
	"amazing":     {0.6, 0.9},
	"awesome":     {1.0, 1.0},
	"fantastic":   {0.4, 0.9},
	"wonderful":   {1.0, 1.0},
	"perfect":     {1.0, 1.0},
	"best":        {1.0, 0.3},
	"better":      {0.5, 0.5},
	"nice":        {0.6, 1.0},
	"love":        {0.5, 0.6},
	"loved":       {0.7, 0.8},
	"lovely":      {0.5, 0.75},
	"like":        {0.2, 0.3},
	"happy":       {0.8, 1.0},
	"glad":        {0.5, 1.0},
	"delighted":   {0.7, 0.8},
	"pleased":     {0.5, 0.6},
	"satisfied":   {0.5, 0.6},
	"excited":     {0.375, 0.75},
	"thrilled":    {0.6, 0.8},
	"joy":         {0.8, 0.9},
	"thank":       {0.3, 0.4},
	"thanks":      {0.3, 0.4},
	"grateful":    {0.6, 0.8},
	"appreciate":  {0.5, 0.5},
	"appreciated": {0.5, 0.5},
	"helpful":     {0.5, 0.5},
	"kind":        {0.6, 0.9},
	"kindly":      {0.3, 0.5},
	"friendly":    {0.4, 0.5},
	"quick":       {0.33, 0.5},
	"fast":        {0.2, 0.6},
	"easy":        {0.43, 0.83},
	"smooth":      {0.4, 0.7},
	"reliable":    {0.5, 0.6},
	"resolved":    {0.3, 0.3},
	"fine":        {0.4, 0.5},
	"okay":        {0.1, 0.3},
	"ok":          {0.1, 0.3},
	"cool":        {0.35, 0.65},
	"wow":         {0.1, 1.0},
	"impressed":   {0.5, 0.8},
	"recommend":   {0.4, 0.4},
	"much":        {0.2, 0.2},
	"fair":        {0.3, 0.6},
	"beautiful":   {0.85, 1.0},
	"brilliant":   {0.9, 1.0},
	"superb":      {1.0, 1.0},
	"outstanding": {0.5, 0.5},

	// negative
	"bad":           {-0.7, 0.67},
	"worse":         {-0.4, 0.6},
	"worst":         {-1.0, 1.0},
	"terrible":      {-1.0, 1.0},
	"horrible":      {-1.0, 1.0},
	"awful":         {-1.0, 1.0},
	"poor":          {-0.4, 0.6},
	"sad":           {-0.5, 1.0},
	"unhappy":       {-0.6, 0.9},
	"depressed":     {-0.6, 0.8},
	"disappointed":  {-0.75, 0.75},
	"disappointing": {-0.6, 0.7},
	"angry":         {-0.5, 1.0},
	"mad":           {-0.625, 1.0},
	"furious":       {-0.8, 0.9},
	"hate":          {-0.8, 0.9},
	"hated":         {-0.8, 0.9},
	"unacceptable":  {-0.6, 0.7},
	"frustrated":    {-0.7, 0.7},
	"frustrating":   {-0.5, 0.7},
	"annoyed":       {-0.5, 0.6},
	"annoying":      {-0.6, 0.8},
	"upset":         {-0.5, 0.6},
	"useless":       {-0.5, 0.2},
	"broken":        {-0.4, 0.4},
	"slow":          {-0.3, 0.4},
	"rude":          {-0.6, 0.8},
	"wrong":         {-0.5, 0.9},
	"fail":          {-0.5, 0.3},
	"failed":        {-0.5, 0.3},
	"scared":        {-0.5, 0.8},
	"worried":       {-0.4, 0.6},
	"nervous":       {-0.3, 0.7},
	"anxious":       {-0.4, 0.7},
	"afraid":        {-0.6, 0.9},
	"disgusting":    {-1.0, 1.0},
	"gross":         {-0.5, 0.7},
	"nasty":         {-1.0, 1.0},
	"ridiculous":    {-0.33, 1.0},
	"stupid":        {-0.8, 1.0},
	"pathetic":      {-1.0, 1.0},
	"unfair":        {-0.6, 0.7},
	"problem":       {-0.2, 0.3},
	"scam":          {-0.7, 0.6},
	"fraud":         {-0.6, 0.5},
	"unauthorized":  {-0.4, 0.3},
	"shocked":       {-0.3, 0.7},
	"confusing":     {-0.3, 0.6},
	"difficult":     {-0.5, 1.0},
	"hard":          {-0.29, 0.54},
	"expensive":     {-0.5, 0.7},
	"waste":         {-0.5, 0.4},
}
